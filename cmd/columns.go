package cmd

import (
	"fmt"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"github.com/spf13/cobra"
)

var columnsRegistry bool

var columnsCmd = &cobra.Command{
	Use:   "columns [file]",
	Short: "List recognized columns and how the file provides them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if columnsRegistry {
			for _, c := range schema.Columns() {
				fmt.Printf("- %s\n", c)
			}
			fmt.Print("Chart kinds:")
			for _, k := range schema.Kinds() {
				fmt.Printf(" %s", k)
			}
			fmt.Println()
			return nil
		}
		ds, err := dataset.Load(datasetPath(args))
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d rows\n", ds.Name(), ds.Len())
		for _, c := range schema.Columns() {
			name := string(c)
			if !ds.Has(name) {
				fmt.Printf("- %s: (missing from file)\n", name)
				continue
			}
			fmt.Printf("- %s: %s\n", name, ds.Kind(name))
		}
		extra := false
		for _, name := range ds.Columns() {
			if schema.IsColumn(name) {
				continue
			}
			if !extra {
				fmt.Println("Unrecognized columns (not plottable):")
				extra = true
			}
			fmt.Printf("- %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
	columnsCmd.Flags().BoolVar(&columnsRegistry, "registry", false, "list the recognized columns and chart kinds without reading a file")
}
