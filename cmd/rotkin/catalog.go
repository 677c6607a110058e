package main

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/rotkin"
	"github.com/vdobler/rotkin/geom"
)

func newLegacyCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "legacy [flags] <legacy-table> <mcquillan-table>",
		Short: "join legacy ages with McQuillan periods",
		Long: `Command legacy reads the fields KIC and Age from the abridged legacy age
catalog (white space separated, with header) and the rotation periods of
the abridged McQuillan et al. (2014) table (white space separated, without
header, KIC in column 0 and period in column 4). Both are joined on KIC.

The joined table with fields KIC, Period and Age is printed to the standard
output, and written to the file given with -o.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := rotkin.AgePeriod(args[0], args[1])
			if err != nil {
				return err
			}
			if err := df.Print(cmd.OutOrStdout()); err != nil {
				return err
			}
			if output == "" {
				return nil
			}
			return writeTable(cmd.OutOrStdout(), df, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the table to `file`")
	return cmd
}

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [flags] <original-data>",
		Short: "extract mass and period from McQuillan data",
		Long: `Command export copies the stellar mass (column 3) and rotation period
(column 4) of every row of the white space separated McQuillan et al. (2014)
data file into a file of two tab separated columns, by default
parseddata.txt. A row with fewer than five columns is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := rotkin.ExportFile(args[0], output)
			if err != nil {
				return err
			}
			log.Info("mass and period exported", "file", output, "rows", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "parseddata.txt", "destination `file`")
	return cmd
}

func newMassPeriodCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "massperiod [flags] <mass-period-file>",
		Short: "plot rotation period against mass",
		Long: `Command massperiod reads a file written by "rotkin export" and plots the
rotation period on a logarithmic axis against the stellar mass, on a mass
axis running from 1.3 down to 0.1 solar masses. The figure is saved as
figure1.png unless another name is given with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := rotkin.ReadMassPeriod(args[0])
			if err != nil {
				return err
			}
			theme, err := cfg.FigureTheme()
			if err != nil {
				return err
			}
			p, err := geom.MassPeriod(df, theme)
			if err != nil {
				return err
			}
			return saveFigure(p, theme, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", geom.MassPeriodFile, "image `file`")
	return cmd
}
