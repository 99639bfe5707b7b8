package cli

import (
	"context"

	"recipemaker/internal/clip"
	"recipemaker/internal/logger"
	"recipemaker/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runTUI starts the interactive recipe page.
func runTUI(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cfg, true, cmd.ErrOrStderr()); err != nil {
		return err
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	cb, err := clip.New(cfg.Clipboard.Mode, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	model := ui.NewAppModel(ui.Options{
		Generator:      sess.client,
		Clipboard:      cb,
		RenderMarkdown: cfg.MarkdownEnabled(),
		ToastDuration:  cfg.UI.ToastDuration,
		Context:        ctx,
	})
	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	logger.Info("recipe page started")
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("recipe page closed")
	return nil
}
