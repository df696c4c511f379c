package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive quarter dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
