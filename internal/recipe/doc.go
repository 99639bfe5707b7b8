// Package recipe holds the recipe maker page: the dish input, the recipe
// output and the loading flag, plus the submit and copy flows that mutate
// them.
//
// Page is not safe for concurrent use. Front ends call it from a single
// goroutine (Bubble Tea's Update loop) and run the webhook request elsewhere,
// reporting back through Complete:
//
//	ticket, err := page.Begin(ctx)   // validation, loading toast
//	text, err := gen.Generate(ticket.Context(), ticket.Dish())
//	page.Complete(ticket, text, err) // always dismisses the toast
//
// Submit runs both halves synchronously for headless callers.
package recipe
