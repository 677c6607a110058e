package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vdobler/rotkin"
	"github.com/vdobler/rotkin/stat"
)

type joinOptions struct {
	leftKey  string
	rightKey string
	output   string
}

func (o *joinOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.leftKey, "left-key", rotkin.KICField, "key field of the left table")
	cmd.Flags().StringVar(&o.rightKey, "right-key", rotkin.KICField, "key field of the right table")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to `file`")
}

type (
	joinFunc     func(l, r *rotkin.DataFrame, lk, rk string) (*rotkin.DataFrame, error)
	joinFileFunc func(l, r, lk, rk, dst string) (*rotkin.DataFrame, error)
)

func (o *joinOptions) run(cmd *cobra.Command, args []string, op joinFunc, fileOp joinFileFunc) error {
	if o.output != "" {
		df, err := fileOp(args[0], args[1], o.leftKey, o.rightKey, o.output)
		if err != nil {
			return err
		}
		log.Info("table written", "file", o.output, "rows", df.N, "fields", len(df.FieldNames()))
		return nil
	}
	left, err := rotkin.ReadFile(args[0])
	if err != nil {
		return err
	}
	right, err := rotkin.ReadFile(args[1])
	if err != nil {
		return err
	}
	df, err := op(left, right, o.leftKey, o.rightKey)
	if err != nil {
		return err
	}
	log.Debug("tables combined", "left", left.N, "right", right.N, "result", df.N)
	return df.WriteCSV(cmd.OutOrStdout())
}

func newMergeCmd() *cobra.Command {
	o := &joinOptions{}
	cmd := &cobra.Command{
		Use:   "merge [flags] <left-table> <right-table>",
		Short: "join two tables on a key",
		Long: `Command merge joins the rows of two tables with equal key values. Rows of the
left table whose key does not occur in the right table are dropped first;
every remaining pair of rows with the same key gives one output row.

The output holds the fields of the left table followed by those of the right
table. If both keys have the same name the key appears only once; other
fields present in both tables are suffixed with _x (left) and _y (right).

The result is written as CSV to the standard output, or to the file given
with -o.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, rotkin.Merge, rotkin.MergeFiles)
		},
	}
	o.addFlags(cmd)
	return cmd
}

func newUniqueCmd() *cobra.Command {
	o := &joinOptions{}
	cmd := &cobra.Command{
		Use:   "unique [flags] <left-table> <right-table>",
		Short: "rows of a table missing in another",
		Long: `Command unique writes the rows of the left table whose key value does not
occur in the key field of the right table, in their original order.

The result is written as CSV to the standard output, or to the file given
with -o.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args, rotkin.AntiJoin, rotkin.UniqueFiles)
		},
	}
	o.addFlags(cmd)
	return cmd
}

type binOptions struct {
	field, bounds, labels    string
	field2, bounds2, labels2 string
	output                   string
}

func newBinCmd() *cobra.Command {
	o := &binOptions{}
	cmd := &cobra.Command{
		Use:   "bin --field <field> --bounds <b0,b1,...> --labels <l1,...> [flags] <table>",
		Short: "replace a numeric field by bin labels",
		Long: `Command bin replaces a numeric field of a table by the label of the interval
its value falls into. The boundaries b0 < b1 < ... < bn given with --bounds
define the intervals [b0,b1], (b1,b2], ..., (bn-1,bn]; the lowest boundary is
included. The n labels are given with --labels. Values outside [b0,bn] get an
empty label.

The binned field is moved to the end of the table. A second field can be
binned in the same run with --field2, --bounds2 and --labels2.

The result is written as CSV to the standard output, or to the file given
with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: o.run,
	}
	cmd.Flags().StringVar(&o.field, "field", "", "numeric `field` to bin")
	cmd.Flags().StringVar(&o.bounds, "bounds", "", "comma separated bin boundaries")
	cmd.Flags().StringVar(&o.labels, "labels", "", "comma separated bin labels")
	cmd.Flags().StringVar(&o.field2, "field2", "", "second `field` to bin")
	cmd.Flags().StringVar(&o.bounds2, "bounds2", "", "bin boundaries of the second field")
	cmd.Flags().StringVar(&o.labels2, "labels2", "", "bin labels of the second field")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to `file`")
	cmd.MarkFlagRequired("field")
	return cmd
}

func (o *binOptions) run(cmd *cobra.Command, args []string) error {
	specs := []rotkin.CutSpec{}
	for _, s := range [][3]string{
		{o.field, o.bounds, o.labels},
		{o.field2, o.bounds2, o.labels2},
	} {
		if s[0] == "" {
			continue
		}
		bounds, err := parseFloats(s[1])
		if err != nil {
			return err
		}
		specs = append(specs, rotkin.CutSpec{Field: s[0], Boundaries: bounds, Labels: splitList(s[2])})
	}
	df, err := rotkin.ReadBinned(args[0], specs...)
	if err != nil {
		return err
	}
	return writeTable(cmd.OutOrStdout(), df, o.output)
}

type teffOptions struct {
	updated bool
	output  string
}

func newTeffCmd() *cobra.Command {
	o := &teffOptions{}
	cmd := &cobra.Command{
		Use:   "teff [flags] <table>",
		Short: "add effective temperatures from Gaia colours",
		Long: `Command teff computes the photometric effective temperature (in K) from the
dereddened Gaia BP-RP colour in field bp_rp and stores it in field teff. An
existing teff field is replaced.

The table is rewritten in place unless a destination is given with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: o.run,
	}
	cmd.Flags().BoolVar(&o.updated, "updated", false, "use the refitted conversion polynomial")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to `file`")
	return cmd
}

func (o *teffOptions) run(cmd *cobra.Command, args []string) error {
	df, err := rotkin.ReadFile(args[0])
	if err != nil {
		return err
	}
	p := rotkin.TeffPolynomial
	if o.updated {
		p = rotkin.UpdatedTeffPolynomial
	}
	if df, err = rotkin.AddTeffWith(df, p); err != nil {
		return err
	}
	output := o.output
	if output == "" {
		output = args[0]
	}
	return writeTable(cmd.OutOrStdout(), df, output)
}

type vzdispOptions struct {
	mh      string
	x       string
	xLabels string
	output  string
}

func newVzdispCmd() *cobra.Command {
	o := &vzdispOptions{}
	cmd := &cobra.Command{
		Use:   "vzdisp --mh <label,...> [flags] <table>",
		Short: "vertical velocity dispersion per metallicity bin",
		Long: `Command vzdisp reads a table of stars with the fields mh_xgboost (metallicity
label), vz (vertical velocity) and Prot (rotation period) and reports for
every metallicity label given with --mh the number of stars, the sample
standard deviation of vz and the mean of Prot, rounded to 3 decimals.

With --x the stars are further split by the labels --xlabels of another
field, e.g. a binned age. Bins with fewer than two stars are not reported.

The result is written as CSV to the standard output, or to the file given
with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: o.run,
	}
	cmd.Flags().StringVar(&o.mh, "mh", "", "comma separated metallicity labels")
	cmd.Flags().StringVar(&o.x, "x", "", "secondary `field` to split by")
	cmd.Flags().StringVar(&o.xLabels, "xlabels", "", "comma separated labels of the secondary field")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to `file`")
	cmd.MarkFlagRequired("mh")
	return cmd
}

func (o *vzdispOptions) run(cmd *cobra.Command, args []string) error {
	mh := splitList(o.mh)
	if len(mh) == 0 {
		return fmt.Errorf("no metallicity labels given")
	}
	xLabels := splitList(o.xLabels)
	if o.x != "" && len(xLabels) == 0 {
		return fmt.Errorf("no labels given for field %s", o.x)
	}
	df, err := rotkin.ReadFile(args[0])
	if err != nil {
		return err
	}
	result, err := rotkin.VzDispersion(df, mh, o.x, xLabels)
	if err != nil {
		return err
	}
	if skipped := len(mh)*max(len(xLabels), 1) - result.N; skipped > 0 {
		log.Info("bins with fewer than two stars skipped", "bins", skipped)
	}
	return writeTable(cmd.OutOrStdout(), result, o.output)
}

type countsOptions struct {
	bin    string
	subbin string
	output string
}

func newCountsCmd() *cobra.Command {
	o := &countsOptions{}
	cmd := &cobra.Command{
		Use:   "counts --bin <field> [flags] <table>",
		Short: "count stars per bin",
		Long: `Command counts reports the number of rows per label of the field given with
--bin, or per combination of --subbin and --bin labels. Only combinations
present in the table are reported.

The result is written as CSV to the standard output, or to the file given
with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := rotkin.ReadFile(args[0])
			if err != nil {
				return err
			}
			result, err := rotkin.BinCounts(df, o.bin, o.subbin)
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), result, o.output)
		},
	}
	cmd.Flags().StringVar(&o.bin, "bin", "", "bin `field`")
	cmd.Flags().StringVar(&o.subbin, "subbin", "", "optional sub bin `field`")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to `file`")
	cmd.MarkFlagRequired("bin")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <table> [<field>...]",
		Short: "summary statistics of numeric fields",
		Long: `Command describe prints count, mean, standard deviation, minimum, quartiles
and maximum of the given fields of a table, or of all numeric fields.
Missing values are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDescribe,
	}
}

func runDescribe(cmd *cobra.Command, args []string) error {
	df, err := rotkin.ReadFile(args[0])
	if err != nil {
		return err
	}
	fields := args[1:]
	if len(fields) == 0 {
		for _, name := range df.FieldNames() {
			if df.Columns[name].Type != rotkin.String {
				fields = append(fields, name)
			}
		}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "field\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\t")
	for _, name := range fields {
		f, err := df.Col(name)
		if err != nil {
			return err
		}
		if f.Type == rotkin.String {
			return fmt.Errorf("%s: field %s is not numeric", df.Name, name)
		}
		s := stat.Describe(f.Data)
		fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
			name, s.N, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	}
	return tw.Flush()
}
