package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/autoplot-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set autoplot configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("dataset: %s\n", cfg.Dataset)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("format: %s\n", cfg.Format)
		fmt.Printf("width_in: %g\n", cfg.WidthIn)
		fmt.Printf("height_in: %g\n", cfg.HeightIn)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		fmt.Printf("log_encoding: %s\n", cfg.LogEncoding)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dataset":
			cfg.Dataset = val
		case "output_dir":
			cfg.OutputDir = val
		case "format":
			f := strings.ToLower(val)
			if !cfgpkg.IsFormat(f) {
				return fmt.Errorf("invalid format: %s (use png, jpg, svg or pdf)", val)
			}
			cfg.Format = f
		case "width_in", "height_in":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid positive number for %s: %v", key, val)
			}
			if key == "width_in" {
				cfg.WidthIn = f
			} else {
				cfg.HeightIn = f
			}
		case "log_level":
			switch val {
			case "debug", "info", "warn", "error":
				cfg.LogLevel = val
			default:
				return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
			}
		case "log_encoding":
			switch val {
			case "console", "json":
				cfg.LogEncoding = val
			default:
				return fmt.Errorf("invalid log_encoding: %s (use console or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
