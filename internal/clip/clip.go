// Package clip writes recipe text to the clipboard.
package clip

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System uses the platform clipboard (pbcopy, xclip/xsel, wl-copy, Windows).
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clip: no system clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set the clipboard via an OSC 52 escape
// sequence. It works over SSH but the terminal may silently ignore it.
type OSC52 struct {
	Out io.Writer
	// Multiplexer wrapping: "tmux", "screen" or "" for none.
	Multiplexer string
}

// WriteAll implements Writer.
func (o OSC52) WriteAll(text string) error {
	seq := osc52.New(text)
	switch o.Multiplexer {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("clip: write osc52 sequence: %w", err)
	}
	return nil
}

// Chain tries each writer in order and stops at the first success.
type Chain []Writer

// WriteAll implements Writer.
func (c Chain) WriteAll(text string) error {
	if len(c) == 0 {
		return errors.New("clip: no clipboard configured")
	}
	var errs []error
	for _, w := range c {
		err := w.WriteAll(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Mode names accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

// New returns the writer for mode. out receives OSC 52 sequences; the
// multiplexer is detected from the environment ($TMUX, $STY).
func New(mode string, out io.Writer) (Writer, error) {
	o := OSC52{Out: out, Multiplexer: detectMultiplexer()}
	switch mode {
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return o, nil
	case ModeAuto, "":
		return Chain{System{}, o}, nil
	default:
		return nil, fmt.Errorf("clip: unknown mode %q", mode)
	}
}

func detectMultiplexer() string {
	switch {
	case os.Getenv("TMUX") != "":
		return "tmux"
	case os.Getenv("STY") != "":
		return "screen"
	default:
		return ""
	}
}
