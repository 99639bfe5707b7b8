// recipemaker turns a dish description into a recipe via a webhook.
package main

import (
	"os"

	"recipemaker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
