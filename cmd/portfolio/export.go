package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdashik24x7/portfolio/internal/skill"
	"github.com/mdashik24x7/portfolio/internal/theme"
	"github.com/mdashik24x7/portfolio/internal/web"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var (
		output string
		light  bool
	)
	cmd := &cobra.Command{
		Use:   "export <category>",
		Short: "Export a category as an SVG bar chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tables, logger, err := flags.load(os.Stderr)
			if err != nil {
				return err
			}
			c, ok := tables.Category(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}
			if len(c.Skills) == 0 {
				return errors.New("category has no skills")
			}

			mode := theme.Dark
			if light {
				mode = theme.Light
			}
			chart := skill.Render(c.Skills, theme.PaletteFor(mode), logger)

			if output == "-" {
				return writeSVG(cmd.OutOrStdout(), c.Title, chart)
			}
			if err := exportFile(output, c.Title, chart); err != nil {
				return err
			}
			logger.Info("chart exported", "category", c.ID, "file", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&light, "light", false, "use the light palette")
	return cmd
}

func writeSVG(w io.Writer, title string, chart skill.Chart) error {
	if err := web.WriteSVG(w, title, chart); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

// exportFile writes the chart to path, including any error from Close.
func exportFile(path, title string, chart skill.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeSVG(f, title, chart); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
