package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdashik24x7/portfolio/internal/page"
	"github.com/mdashik24x7/portfolio/internal/skill"
	"github.com/mdashik24x7/portfolio/internal/termchart"
)

func newSkillsCmd(flags *rootFlags) *cobra.Command {
	var (
		barWidth int
		noIcons  bool
	)
	cmd := &cobra.Command{
		Use:   "skills [category]",
		Short: "Print skill charts to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, tables, logger, err := flags.load(os.Stderr)
			if err != nil {
				return err
			}

			cats := tables.Categories
			if len(args) == 1 {
				c, ok := tables.Category(args[0])
				if !ok {
					return fmt.Errorf("unknown category %q", args[0])
				}
				cats = []skill.Category{c}
			}

			ctrl, closeDB := terminalTheme(cmd.Context(), cfg, logger)
			defer closeDB()

			opts := termchart.DefaultOptions(os.Stdout)
			opts.BarWidth = barWidth
			opts.Icons = !noIcons

			out := cmd.OutOrStdout()
			for i, c := range cats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				p := page.Panel(c, ctrl.Mode(), logger)
				fmt.Fprintln(out, c.Title)
				fmt.Fprint(out, termchart.Render(p.Chart, opts))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&barWidth, "width", "w", 0, "bar width in cells")
	cmd.Flags().BoolVar(&noIcons, "no-icons", false, "omit icon glyphs")
	return cmd
}
