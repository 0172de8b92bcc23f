package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"habitlink/internal/tui"
)

type TuiCmd struct{}

func (cmd *TuiCmd) Run(appCtx *Context) error {
	model := tui.NewModel(tui.Deps{
		API:      appCtx.API,
		Cache:    appCtx.Cache,
		Invites:  appCtx.Invites,
		Bridge:   appCtx.Bridge,
		Haptics:  appCtx.Haptics,
		Locale:   appCtx.Locale,
		Resolver: appCtx.Resolver(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI exited with error: %w", err)
	}
	return nil
}
