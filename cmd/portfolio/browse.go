package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mdashik24x7/portfolio/internal/termchart"
	"github.com/mdashik24x7/portfolio/internal/tui"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse skill charts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, tables, logger, err := flags.load(os.Stderr)
			if err != nil {
				return err
			}
			ctrl, closeDB := terminalTheme(cmd.Context(), cfg, logger)
			defer closeDB()

			m := tui.New(tables, ctrl, logger, !termchart.IsTerminal(os.Stdout))
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
