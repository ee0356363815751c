package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Format != "png" || c.WidthIn != 15 || c.HeightIn != 15 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Dataset != "./AutomobilePrice_Lab2.csv" {
		t.Fatalf("dataset default = %q", c.Dataset)
	}
}

func TestSaveLoadRoundTripAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	c := &Global{Dataset: "cars.csv", OutputDir: "out", Format: "svg", WidthIn: 8, HeightIn: 6, LogLevel: "debug", LogEncoding: "json"}
	if err := Save(c, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *c {
		t.Fatalf("got %+v want %+v", got, c)
	}

	t.Setenv("AUTOPLOT_FORMAT", "pdf")
	got, err = Load(path)
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if got.Format != "pdf" {
		t.Fatalf("env override not applied: %s", got.Format)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("format: gif\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
