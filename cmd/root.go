package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/autoplot-cli/internal/config"
	"github.com/KaramelBytes/autoplot-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "autoplot",
	Short: "autoplot: chart automobile dataset columns against each other",
	Long: `autoplot loads the automobile price dataset and renders scatter, bar, line or
histogram figures comparing one column against others, exported as PNG, JPEG, SVG or PDF.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.autoplot/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	lc := logging.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding}
	if debug {
		lc.Level = "debug"
		lc.Development = true
	}
	l, err := logging.New(lc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: logger disabled: %v\n", err)
		return
	}
	logging.SetLogger(l)
}

// datasetPath picks the file argument if given, otherwise the configured dataset.
func datasetPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg != nil {
		return cfg.Dataset
	}
	return cfgpkg.Defaults().Dataset
}
