package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/autoplot-cli/internal/chart"
	cfgpkg "github.com/KaramelBytes/autoplot-cli/internal/config"
	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/logging"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"github.com/KaramelBytes/autoplot-cli/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

var (
	plotKind    string
	plotPrimary string
	plotCompare []string
	plotAll     bool
	plotOutput  string
	plotFormat  string
	plotWidth   float64
	plotHeight  float64
)

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Render a chart of one column against others",
	Long: `Render a scatter, bar, line or histogram figure.

Scatter, bar and line charts need at least one --compare column (or --all).
Histograms count the distinct values of --primary and take no comparisons.`,
	Example: `  autoplot plot cars.csv --kind histogram --primary make
  autoplot plot cars.csv --kind scatter --primary horsepower --compare price,city-mpg -o hp.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if c == nil {
			c = cfgpkg.Defaults()
		}
		kind, err := schema.ParseChartKind(plotKind)
		if err != nil {
			return err
		}
		if plotPrimary == "" {
			return fmt.Errorf("--primary is required")
		}
		primary, err := schema.ParseColumn(plotPrimary)
		if err != nil {
			return err
		}
		compare, err := schema.ParseColumns(plotCompare)
		if err != nil {
			return err
		}

		out, err := outputPath(c, kind, primary)
		if err != nil {
			return err
		}
		width, height := c.WidthIn, c.HeightIn
		if cmd.Flags().Changed("width") {
			width = plotWidth
		}
		if cmd.Flags().Changed("height") {
			height = plotHeight
		}
		if width <= 0 || height <= 0 {
			return fmt.Errorf("figure size must be positive, got %gx%g in", width, height)
		}

		path := datasetPath(args)
		ds, err := dataset.Load(path)
		if err != nil {
			return err
		}
		if plotAll {
			if len(compare) > 0 {
				return fmt.Errorf("use either --compare or --all, not both")
			}
			compare = everyOtherColumn(ds, primary)
		}

		log := logging.L().With(zap.String("run_id", uuid.NewString()), zap.Stringer("kind", kind))
		log.Debug("dataset loaded", zap.String("file", ds.Name()), zap.Int("rows", ds.Len()), zap.Int("columns", len(ds.Columns())))

		fig, err := chart.Render(ds, kind, primary, compare...)
		if err != nil {
			return err
		}
		if err := fig.Save(out, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch); err != nil {
			return err
		}
		log.Info("figure written",
			zap.String("path", out),
			zap.Int("rows", fig.Rows),
			zap.Int("cols", fig.Cols),
			zap.Int("panels", len(fig.Drawn)))
		fmt.Printf("✓ Wrote %s chart to %s\n", kind, out)
		return nil
	},
}

// outputPath resolves -o, falling back to <output_dir>/<kind>_<primary>.<format>.
func outputPath(c *cfgpkg.Global, kind schema.ChartKind, primary schema.Column) (string, error) {
	if plotOutput != "" {
		if !cfgpkg.IsFormat(utils.Ext(plotOutput)) {
			return "", fmt.Errorf("%w: %s", chart.ErrUnsupportedFormat, plotOutput)
		}
		return plotOutput, nil
	}
	format := c.Format
	if plotFormat != "" {
		format = strings.ToLower(plotFormat)
	}
	if !cfgpkg.IsFormat(format) {
		return "", fmt.Errorf("%w: %s", chart.ErrUnsupportedFormat, format)
	}
	name := fmt.Sprintf("%s_%s.%s", kind, utils.SafeName(string(primary)), format)
	return filepath.Join(c.OutputDir, name), nil
}

// everyOtherColumn lists the recognized columns present in ds, excluding primary.
func everyOtherColumn(ds *dataset.Dataset, primary schema.Column) []schema.Column {
	var out []schema.Column
	for _, col := range schema.Columns() {
		if col != primary && ds.Has(string(col)) {
			out = append(out, col)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotKind, "kind", "k", "scatter", "chart kind: scatter | bar | line | histogram")
	plotCmd.Flags().StringVarP(&plotPrimary, "primary", "m", "", "primary column (x axis)")
	plotCmd.Flags().StringSliceVarP(&plotCompare, "compare", "c", nil, "comparison columns, comma-separated (repeatable)")
	plotCmd.Flags().BoolVar(&plotAll, "all", false, "compare against every other recognized column in the file")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "output file; format follows the extension (png, jpg, svg, pdf)")
	plotCmd.Flags().StringVar(&plotFormat, "format", "", "format when --output is not given (overrides config)")
	plotCmd.Flags().Float64Var(&plotWidth, "width", 0, "figure width in inches (overrides config)")
	plotCmd.Flags().Float64Var(&plotHeight, "height", 0, "figure height in inches (overrides config)")
}
