package cli

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"recipemaker/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newConfigureCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactively write the config file",
		Long: `Walk through the webhook endpoint, request timeout and clipboard
settings, then write them to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigure(cmd, global)
		},
	}
}

func runConfigure(cmd *cobra.Command, global *globalOptions) error {
	path, err := global.path()
	if err != nil {
		return err
	}
	// Edit what the file says; env overrides must not be written back.
	cfg, err := config.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w\nFix or remove the file, then run 'recipemaker configure' again", err)
	}

	endpoint := cfg.Webhook.URL
	timeout := ""
	if cfg.Webhook.Timeout > 0 {
		timeout = cfg.Webhook.Timeout.String()
	}
	mode := cfg.Clipboard.Mode
	render := cfg.MarkdownEnabled()

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipe webhook URL").
				Description("The endpoint that receives {\"dish\": ...} and answers {\"recipe\": ...}.").
				Validate(validateEndpoint).
				Value(&endpoint),
			huh.NewInput().
				Title("Request timeout").
				Description("Go duration such as 45s or 2m. Leave empty to wait indefinitely.").
				Validate(validateTimeout).
				Value(&timeout),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Clipboard").
				Description("How \"Copy Recipe\" reaches your clipboard.").
				Options(
					huh.NewOption("Auto (system, then terminal)", config.ClipboardAuto),
					huh.NewOption("System clipboard", config.ClipboardSystem),
					huh.NewOption("Terminal (OSC 52, works over SSH)", config.ClipboardOSC52),
				).
				Value(&mode),
			huh.NewConfirm().
				Title("Render recipes as Markdown?").
				Value(&render),
		),
	).Run()
	if err != nil {
		return err
	}

	cfg.Webhook.URL = strings.TrimSpace(endpoint)
	cfg.Webhook.Timeout, _ = parseTimeout(timeout)
	cfg.Clipboard.Mode = mode
	cfg.UI.RenderMarkdown = &render
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Config written to", path)
	return nil
}

func validateEndpoint(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("enter an http(s) URL")
	}
	return nil
}

func validateTimeout(s string) error {
	_, err := parseTimeout(s)
	return err
}

// parseTimeout parses a duration; empty means no timeout.
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative")
	}
	return d, nil
}
