package main

import (
	"fmt"
	"image/color"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"

	"github.com/vdobler/rotkin"
	"github.com/vdobler/rotkin/geom"
)

func saveFigure(p *plot.Plot, theme rotkin.Theme, name string) error {
	path, err := geom.Save(p, theme, name)
	if err != nil {
		return err
	}
	log.Info("figure saved", "file", path)
	return nil
}

// figureOptions are shared by all figure commands.
type figureOptions struct {
	x, y     string
	hue      string
	hueOrder string
	palette  string
	title    string
	output   string
}

func (o *figureOptions) addFlags(cmd *cobra.Command, name string) {
	cmd.Flags().StringVar(&o.x, "x", "", "`field` on the x axis")
	cmd.Flags().StringVar(&o.hue, "hue", "", "`field` to color by")
	cmd.Flags().StringVar(&o.hueOrder, "hueorder", "", "comma separated order of the hue levels")
	cmd.Flags().StringVar(&o.palette, "palette", "", "comma separated color names or #rrggbb values")
	cmd.Flags().StringVar(&o.title, "title", "", "figure title")
	cmd.Flags().StringVarP(&o.output, "output", "o", name, "image `file`, without extension the theme format is used")
	cmd.MarkFlagRequired("x")
}

// input reads the table and the theme.
func (o *figureOptions) input(path string) (*rotkin.DataFrame, rotkin.Theme, []color.Color, error) {
	theme, err := cfg.FigureTheme()
	if err != nil {
		return nil, theme, nil, err
	}
	pal, err := rotkin.Palette(splitList(o.palette))
	if err != nil {
		return nil, theme, nil, err
	}
	df, err := rotkin.ReadFile(path)
	return df, theme, pal, err
}

func newBoxplotCmd() *cobra.Command {
	o := &figureOptions{}
	var xOrder string
	var counts bool
	cmd := &cobra.Command{
		Use:   "boxplot --x <field> --y <field> [flags] <table>",
		Short: "draw a grouped box plot",
		Long: `Command boxplot draws one box of the numeric field --y per level of the field
--x, split into side by side boxes per level of --hue. The levels are drawn
in the order given with --xorder and --hueorder, or in order of appearance.

Boxes span the quartiles, whiskers reach the most extreme values within 1.5
times the inter quartile range. With --counts the number of stars is written
onto each box.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, theme, pal, err := o.input(args[0])
			if err != nil {
				return err
			}
			p, boxes, err := geom.BoxPlot(df, geom.BoxPlotOptions{
				X:        o.x,
				Y:        o.y,
				Hue:      o.hue,
				XOrder:   splitList(xOrder),
				HueOrder: splitList(o.hueOrder),
				Palette:  pal,
				Title:    o.title,
			}, theme)
			if err != nil {
				return err
			}
			if counts {
				if err := geom.AddBoxCounts(p, boxes, theme); err != nil {
					return err
				}
			}
			return saveFigure(p, theme, o.output)
		},
	}
	o.addFlags(cmd, "boxplot")
	cmd.Flags().StringVar(&o.y, "y", "", "numeric `field` on the y axis")
	cmd.Flags().StringVar(&xOrder, "xorder", "", "comma separated order of the x levels")
	cmd.Flags().BoolVar(&counts, "counts", false, "write the number of values onto each box")
	cmd.MarkFlagRequired("y")
	return cmd
}

func newHistCmd() *cobra.Command {
	o := &figureOptions{}
	var bins int
	var binRange string
	var counts bool
	cmd := &cobra.Command{
		Use:   "hist --x <field> [flags] <table>",
		Short: "draw a histogram",
		Long: `Command hist draws a histogram of the numeric field --x, one overlaid
histogram per level of --hue. The number of bins is set with --bins, by
default it is chosen from the data. With --range only values within min and
max are counted. With --counts the count is written above each bar.

The bin counts are printed to the standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, theme, pal, err := o.input(args[0])
			if err != nil {
				return err
			}
			opts := geom.HistogramOptions{
				X:        o.x,
				Hue:      o.hue,
				HueOrder: splitList(o.hueOrder),
				Palette:  pal,
				Bins:     bins,
				Title:    o.title,
			}
			if binRange != "" {
				r, err := parseFloats(binRange)
				if err != nil {
					return err
				}
				if len(r) != 2 || !(r[0] < r[1]) {
					return fmt.Errorf("bad histogram range %q", binRange)
				}
				opts.Min, opts.Max = r[0], r[1]
			}
			p, layers, err := geom.Histogram(df, opts, theme)
			if err != nil {
				return err
			}
			if counts {
				if err := geom.AddHistCounts(p, layers, theme); err != nil {
					return err
				}
			}
			if err := printBins(cmd, layers); err != nil {
				return err
			}
			return saveFigure(p, theme, o.output)
		},
	}
	o.addFlags(cmd, "histogram")
	cmd.Flags().IntVar(&bins, "bins", 0, "number of bins, 0 chooses automatically")
	cmd.Flags().StringVar(&binRange, "range", "", "binned range as `min,max`")
	cmd.Flags().BoolVar(&counts, "counts", false, "write the count above each bar")
	return cmd
}

func printBins(cmd *cobra.Command, layers []geom.Layer) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "hue\tlo\thi\tcount\t")
	for _, l := range layers {
		for _, b := range l.Bins {
			fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%d\t\n", l.Hue, b.Lo, b.Hi, b.Count)
		}
	}
	return tw.Flush()
}

func newScatterCmd() *cobra.Command {
	o := &figureOptions{}
	cmd := &cobra.Command{
		Use:   "scatter --x <field> --y <field> [flags] <table>",
		Short: "draw a scatter plot",
		Long: `Command scatter plots the numeric field --y against --x. With --hue the
points are colored by the levels of that field, in the order given with
--hueorder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, theme, pal, err := o.input(args[0])
			if err != nil {
				return err
			}
			p, err := geom.Scatter(df, geom.ScatterOptions{
				X:        o.x,
				Y:        o.y,
				Hue:      o.hue,
				HueOrder: splitList(o.hueOrder),
				Palette:  pal,
				Title:    o.title,
			}, theme)
			if err != nil {
				return err
			}
			return saveFigure(p, theme, o.output)
		},
	}
	o.addFlags(cmd, "scatter")
	cmd.Flags().StringVar(&o.y, "y", "", "numeric `field` on the y axis")
	cmd.MarkFlagRequired("y")
	return cmd
}
