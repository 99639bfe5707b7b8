package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"recipemaker/internal/clip"
	"recipemaker/internal/logger"
	"recipemaker/internal/recipe"

	"github.com/spf13/cobra"
)

type generateOptions struct {
	copy bool
}

func newGenerateCommand(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [dish...]",
		Short: "Generate a recipe once and print it",
		Long: `Send a dish description to the recipe webhook and print the recipe.

The dish is taken from the arguments, or from stdin when no arguments are
given. Progress and notifications go to stderr; only the recipe goes to
stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the recipe to the clipboard")
	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions, args []string) error {
	cfg, err := global.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cfg, false, cmd.ErrOrStderr()); err != nil {
		return err
	}
	defer logger.Close()

	dish, err := readDish(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	sess, err := newSession(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	var cb recipe.Clipboard
	if opts.copy {
		w, err := clip.New(cfg.Clipboard.Mode, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cb = w
	}

	page := recipe.NewPage(sess.client, newStreamNotifier(cmd.ErrOrStderr()), cb)
	page.SetInput(dish)
	if err := page.Submit(cmd.Context()); err != nil {
		var verr *recipe.ValidationError
		if errors.As(err, &verr) {
			return errors.New(verr.Message)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), page.Output())
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), page.Output())
	if opts.copy {
		if err := page.Copy(); err != nil {
			return err
		}
	}
	return nil
}

// readDish joins args, or reads all of r when there are none.
func readDish(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read dish from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// streamNotifier prints notifications as lines on a stream.
type streamNotifier struct {
	mu   sync.Mutex
	w    io.Writer
	next int
}

func newStreamNotifier(w io.Writer) *streamNotifier {
	return &streamNotifier{w: w}
}

// Loading implements recipe.Notifier.
func (n *streamNotifier) Loading(msg string) recipe.ToastID {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	fmt.Fprintln(n.w, "…", msg)
	return recipe.ToastID(fmt.Sprintf("loading-%d", n.next))
}

// Dismiss implements recipe.Notifier.
func (n *streamNotifier) Dismiss(recipe.ToastID) {}

// Success implements recipe.Notifier.
func (n *streamNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, "✓", msg)
}

// Error implements recipe.Notifier.
func (n *streamNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, "✗", msg)
}
