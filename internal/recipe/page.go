package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipemaker/internal/logger"
)

// ToastID identifies a loading notification so it can be dismissed.
type ToastID string

// Notifier shows transient notifications.
type Notifier interface {
	Loading(msg string) ToastID
	Dismiss(id ToastID)
	Success(msg string)
	Error(msg string)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Generator turns a dish description into recipe text.
// An empty result means the webhook answered without a recipe.
type Generator interface {
	Generate(ctx context.Context, dish string) (string, error)
}

// Ticket tracks one in-flight submission.
type Ticket struct {
	generation uint64
	dish       string
	toast      ToastID
	prevState  State
	ctx        context.Context
	cancel     context.CancelFunc
	dismissed  bool
}

// Context is cancelled when the submission is cancelled or completed.
func (t *Ticket) Context() context.Context { return t.ctx }

// Dish is the input text as the user typed it.
func (t *Ticket) Dish() string { return t.dish }

// Generation is the submission's sequence number.
func (t *Ticket) Generation() uint64 { return t.generation }

// Page holds the recipe maker state.
type Page struct {
	input      string
	output     string
	state      State
	generation uint64
	inflight   *Ticket

	generator Generator
	notifier  Notifier
	clipboard Clipboard
}

// NewPage creates an idle page. A nil notifier discards notifications.
func NewPage(gen Generator, n Notifier, cb Clipboard) *Page {
	if n == nil {
		n = nopNotifier{}
	}
	return &Page{generator: gen, notifier: n, clipboard: cb}
}

// Input returns the current dish text.
func (p *Page) Input() string { return p.input }

// Output returns the recipe area text.
func (p *Page) Output() string { return p.output }

// State returns the current state.
func (p *Page) State() State { return p.state }

// Loading reports whether a request is in flight.
func (p *Page) Loading() bool { return p.state == StateLoading }

// ControlsEnabled reports whether input, tools and submit accept interaction.
func (p *Page) ControlsEnabled() bool { return !p.Loading() }

// Generation returns the number of submissions started so far.
func (p *Page) Generation() uint64 { return p.generation }

// SetInput replaces the dish text. It is ignored while loading.
func (p *Page) SetInput(s string) bool {
	if p.Loading() {
		return false
	}
	p.input = s
	return true
}

// Clear empties input and output. It is ignored while loading.
func (p *Page) Clear() bool {
	if p.Loading() {
		return false
	}
	p.input = ""
	p.output = ""
	p.state = StateIdle
	return true
}

// Begin validates the input and enters the loading state. The returned
// ticket must be passed to Complete once the request settles.
func (p *Page) Begin(ctx context.Context) (*Ticket, error) {
	if p.Loading() {
		return nil, ErrBusy
	}
	if strings.TrimSpace(p.input) == "" {
		p.output = MsgPrompt
		p.state = StateIdle
		return nil, &ValidationError{Message: MsgPrompt}
	}

	p.generation++
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticket{
		generation: p.generation,
		dish:       p.input,
		prevState:  p.state,
		ctx:        ctx,
		cancel:     cancel,
	}
	t.toast = p.notifier.Loading(MsgLoading)
	p.inflight = t
	p.state = StateLoading
	logger.Debug("recipe submission started", "generation", t.generation)
	return t, nil
}

// Complete applies the outcome of t's request. The ticket's loading
// notification is always dismissed; the outcome is applied only if t is
// still the current submission. It reports whether the outcome was applied.
func (p *Page) Complete(t *Ticket, text string, err error) bool {
	applied, _ := p.finish(t, text, err)
	return applied
}

// Cancel abandons the in-flight submission, restoring the previous state and
// leaving the output untouched. It reports whether anything was cancelled.
func (p *Page) Cancel() bool {
	t := p.inflight
	if t == nil {
		return false
	}
	p.inflight = nil
	p.state = t.prevState
	p.release(t)
	logger.Info("recipe submission cancelled", "generation", t.generation)
	return true
}

// Submit runs a whole submission synchronously: validation, the webhook
// call and the outcome. A panicking Generator is reported as a failed
// request.
func (p *Page) Submit(ctx context.Context) error {
	t, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	text, genErr := p.generate(t)
	_, err = p.finish(t, text, genErr)
	return err
}

func (p *Page) generate(t *Ticket) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recipe generator panicked", "panic", r, "generation", t.generation)
			text, err = "", fmt.Errorf("recipe generator panicked: %v", r)
		}
	}()
	return p.generator.Generate(t.Context(), t.Dish())
}

// Copy writes the output verbatim to the clipboard. Empty output is a no-op.
func (p *Page) Copy() error {
	if p.output == "" {
		return nil
	}
	err := errors.New("recipe: no clipboard available")
	if p.clipboard != nil {
		err = p.clipboard.WriteAll(p.output)
	}
	if err != nil {
		logger.Error("failed to copy recipe", "err", err)
		p.notifier.Error(MsgCopyFailed)
		return fmt.Errorf("copy recipe: %w", err)
	}
	p.notifier.Success(MsgCopied)
	return nil
}

// finish dismisses t's notification and, if t is current, applies the
// outcome and returns the error to report to a synchronous caller.
func (p *Page) finish(t *Ticket, text string, err error) (bool, error) {
	if t == nil {
		return false, nil
	}
	p.release(t)
	if p.inflight != t {
		logger.Debug("discarding stale recipe response", "generation", t.generation, "current", p.generation)
		return false, nil
	}
	p.inflight = nil

	if err != nil && errors.Is(err, context.Canceled) {
		p.state = t.prevState
		logger.Info("recipe request cancelled", "generation", t.generation)
		return true, ErrCancelled
	}
	if err != nil {
		logger.Error("error generating recipe", "generation", t.generation, "err", err)
		p.output = MsgFailure
		p.state = StateError
		p.notifier.Error(MsgErrorToast)
		return true, fmt.Errorf("generate recipe: %w", err)
	}

	if text == "" {
		text = MsgFallback
	}
	p.output = text
	p.state = StateDone
	p.notifier.Success(MsgSuccess)
	return true, nil
}

// release cancels t's context and dismisses its notification once.
func (p *Page) release(t *Ticket) {
	t.cancel()
	if !t.dismissed {
		t.dismissed = true
		p.notifier.Dismiss(t.toast)
	}
}

type nopNotifier struct{}

func (nopNotifier) Loading(string) ToastID { return "" }
func (nopNotifier) Dismiss(ToastID)        {}
func (nopNotifier) Success(string)         {}
func (nopNotifier) Error(string)           {}
