package cmd

import (
	"fmt"

	"github.com/KaramelBytes/autoplot-cli/internal/analysis"
	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	descOutputPath string
	descSampleRows int
	descTopValues  int
	descCorr       bool
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Summarize the dataset columns (kinds, counts, ranges)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(datasetPath(args))
		if err != nil {
			return err
		}
		opt := analysis.DefaultOptions()
		if cmd.Flags().Changed("sample-rows") {
			opt.SampleRows = descSampleRows
		}
		if descTopValues > 0 {
			opt.TopValues = descTopValues
		}
		opt.Correlations = descCorr
		rep := analysis.Describe(ds, opt)

		if descOutputPath == "" {
			fmt.Println(rep.Markdown())
			return nil
		}
		var body []byte
		switch utils.Ext(descOutputPath) {
		case "html", "htm":
			body = rep.HTML()
		case "json":
			body, err = utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
		default:
			body = []byte(rep.Markdown())
		}
		if err := utils.SafeWriteFile(descOutputPath, body); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("✓ Wrote description to %s\n", descOutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVarP(&descOutputPath, "output", "o", "", "optional path to write the report (.md, .html or .json)")
	describeCmd.Flags().IntVar(&descSampleRows, "sample-rows", 5, "number of sample rows to include")
	describeCmd.Flags().IntVar(&descTopValues, "top", 5, "most frequent values listed per categorical column")
	describeCmd.Flags().BoolVar(&descCorr, "correlations", false, "compute Pearson correlations among numeric columns")
}
