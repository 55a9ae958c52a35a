package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(state, ctx.PhotoDir(), ctx.Debug), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
