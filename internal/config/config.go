package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Dataset is the file read when a command is given no path.
	Dataset   string  `mapstructure:"dataset" yaml:"dataset"`
	OutputDir string  `mapstructure:"output_dir" yaml:"output_dir"`
	Format    string  `mapstructure:"format" yaml:"format"`
	WidthIn   float64 `mapstructure:"width_in" yaml:"width_in"`
	HeightIn  float64 `mapstructure:"height_in" yaml:"height_in"`

	// Logging
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogEncoding string `mapstructure:"log_encoding" yaml:"log_encoding"`
}

// Formats lists the figure formats accepted for the format key.
var Formats = []string{"png", "jpg", "jpeg", "svg", "pdf"}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Global {
	return &Global{
		Dataset:     "./AutomobilePrice_Lab2.csv",
		OutputDir:   ".",
		Format:      "png",
		WidthIn:     15,
		HeightIn:    15,
		LogLevel:    "info",
		LogEncoding: "console",
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.autoplot/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (including a .env file in the working directory) > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	// .env is optional; variables already set in the environment win
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("AUTOPLOT")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("dataset", d.Dataset)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("width_in", d.WidthIn)
	v.SetDefault("height_in", d.HeightIn)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_encoding", d.LogEncoding)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// a missing default config file is fine; a broken or missing explicit one is not
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges that viper cannot express.
func (c *Global) Validate() error {
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		return fmt.Errorf("invalid figure size %gx%g in: both dimensions must be positive", c.WidthIn, c.HeightIn)
	}
	if !IsFormat(c.Format) {
		return fmt.Errorf("invalid format: %s (use png, jpg, svg or pdf)", c.Format)
	}
	return nil
}

// IsFormat reports whether f is a supported figure format.
func IsFormat(f string) bool {
	for _, s := range Formats {
		if s == f {
			return true
		}
	}
	return false
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".autoplot"), nil
}
