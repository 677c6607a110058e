// Rotkin is a tool to study stellar rotation, age, mass, metallicity and
// vertical velocity dispersion in star catalogs.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/rotkin"
	"github.com/vdobler/rotkin/internal/config"
	"github.com/vdobler/rotkin/internal/logger"
)

var (
	cfg = &config.Config{LogMode: "dev"}
	log = logger.Nop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rotkin",
		Short:         "a tool for stellar rotation catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMergeCmd(),
		newUniqueCmd(),
		newBinCmd(),
		newTeffCmd(),
		newVzdispCmd(),
		newCountsCmd(),
		newDescribeCmd(),
		newLegacyCmd(),
		newExportCmd(),
		newMassPeriodCmd(),
		newBoxplotCmd(),
		newHistCmd(),
		newScatterCmd(),

		// help guides
		tableFilesGuide,
		environmentGuide,
	)
	return root
}

func main() {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rotkin: %v\n", err)
		os.Exit(1)
	}
	l, err := logger.New(c.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rotkin: %v\n", err)
		os.Exit(1)
	}
	cfg, log = c, l

	err = newRootCmd().Execute()
	log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rotkin: %v\n", err)
		os.Exit(1)
	}
}

// writeTable writes df to path or as CSV to w if path is empty.
func writeTable(w io.Writer, df *rotkin.DataFrame, path string) error {
	if path == "" {
		return df.WriteCSV(w)
	}
	if err := rotkin.WriteFile(df, path); err != nil {
		return err
	}
	log.Info("table written", "file", path, "rows", df.N, "fields", len(df.FieldNames()))
	return nil
}

// splitList splits a comma separated list. Blanks around items are
// removed, an empty s yields nil.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	items := strings.Split(s, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

// parseFloats parses a comma separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	items := splitList(s)
	x := make([]float64, len(items))
	for i, item := range items {
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q in list %q", item, s)
		}
		x[i] = v
	}
	return x, nil
}

var tableFilesGuide = &cobra.Command{
	Use:   "table-files",
	Short: "about input and output tables",
	Long: `Rotkin reads three kinds of tables, selected by the file extension:

	.csv            comma separated values with a header line
	.txt, .dat      white space separated columns with a header line
	.xlsx           the first sheet of a spreadsheet, header in row 1

Columns holding only integers or only numbers are numeric, anything else
is text. Empty cells and the tokens NA, N/A, NaN and nan are missing
values.

The abridged McQuillan table and the original McQuillan data file have no
header; their columns are addressed by position.

Tables are written as CSV without an index column, or as a spreadsheet if
the destination ends in .xlsx. Missing values are written as empty cells.`,
}

var environmentGuide = &cobra.Command{
	Use:   "environment",
	Short: "about environment variables",
	Long: `Rotkin reads the following environment variables:

	ROTKIN_LOG_MODE   dev (default), prod or quiet
	ROTKIN_THEME      a YAML file with figure settings
	ROTKIN_FORMAT     image format of figures, e.g. png, svg, pdf or eps
	ROTKIN_WIDTH      figure width in inches
	ROTKIN_HEIGHT     figure height in inches

A theme file sets any of the fields font_typeface, font_variant,
title_size, label_size, legend_size, tick_label_size, axis_line_width,
line_width, tick_width, major_tick_length, tick_pad, minor_ticks, grid,
point_radius, alpha, width, height and format, e.g. Minor ticks are half
as long as major ticks.

	label_size: 24
	grid: true
	format: png`,
}
