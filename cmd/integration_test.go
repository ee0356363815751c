package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/autoplot-cli/internal/chart"
	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
)

// resetFlags clears bound variables and Changed state that persist across
// rootCmd executions within one test binary.
func resetFlags() {
	cfgFile, debug = "", false
	plotKind, plotPrimary, plotCompare, plotAll = "scatter", "", nil, false
	plotOutput, plotFormat, plotWidth, plotHeight = "", "", 0, 0
	descOutputPath, descSampleRows, descTopValues, descCorr = "", 5, 5, false
	columnsRegistry = false
	for _, name := range []string{"width", "height", "compare"} {
		if fl := plotCmd.Flags().Lookup(name); fl != nil {
			fl.Changed = false
		}
	}
	if fl := describeCmd.Flags().Lookup("sample-rows"); fl != nil {
		fl.Changed = false
	}
}

func execCmd(args ...string) error {
	resetFlags()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	if err := execCmd(args...); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// isolate points HOME at a temp dir so no user config leaks into the run.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"AUTOPLOT_DATASET", "AUTOPLOT_OUTPUT_DIR", "AUTOPLOT_FORMAT", "AUTOPLOT_WIDTH_IN", "AUTOPLOT_HEIGHT_IN"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

// writeAutos writes a small dataset; the row after the header is dropped on load.
func writeAutos(t *testing.T, dir string) string {
	t.Helper()
	rows := []string{
		"make,fuel-type,horsepower,city-mpg,price",
		"alfa-romero,gas,111,21,13495",
		"toyota,gas,62,35,2000",
		"honda,diesel,?,38,1500",
		"toyota,gas,70,30,?",
	}
	p := filepath.Join(dir, "autos.csv")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if st.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestCLI_PlotKinds(t *testing.T) {
	home := isolate(t)
	data := writeAutos(t, home)

	hist := filepath.Join(home, "out", "hist.png")
	runCmd(t, "plot", data, "--kind", "histogram", "--primary", "make", "-o", hist)
	requireFile(t, hist)

	scatter := filepath.Join(home, "scatter.svg")
	runCmd(t, "plot", data, "--kind", "scatter", "--primary", "horsepower", "--compare", "price,city-mpg", "-o", scatter, "--width", "4", "--height", "4")
	requireFile(t, scatter)
	b, err := os.ReadFile(scatter)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<svg") {
		t.Fatalf("not an svg document")
	}

	bar := filepath.Join(home, "bar.pdf")
	runCmd(t, "plot", data, "-k", "bar", "-m", "make", "-c", "price", "-o", bar, "--width", "5", "--height", "5")
	requireFile(t, bar)

	line := filepath.Join(home, "line.png")
	runCmd(t, "plot", data, "-k", "line", "-m", "make", "--all", "-o", line, "--width", "5", "--height", "5")
	requireFile(t, line)
}

func TestCLI_PlotDefaultOutputName(t *testing.T) {
	home := isolate(t)
	data := writeAutos(t, home)
	outDir := filepath.Join(home, "figs")

	runCmd(t, "config", "set", "output_dir", outDir)
	runCmd(t, "config", "set", "format", "svg")
	runCmd(t, "plot", data, "--kind", "histogram", "--primary", "fuel-type", "--width", "3", "--height", "3")
	requireFile(t, filepath.Join(outDir, "histogram_fuel-type.svg"))
}

func TestCLI_PlotErrors(t *testing.T) {
	home := isolate(t)
	data := writeAutos(t, home)
	out := filepath.Join(home, "x.png")

	err := execCmd("plot", data, "--kind", "histogram", "--primary", "make", "--compare", "price", "-o", out)
	if !errors.Is(err, chart.ErrInvalidArgument) {
		t.Fatalf("histogram with comparisons: got %v", err)
	}
	err = execCmd("plot", data, "--kind", "scatter", "--primary", "make", "-o", out)
	if !errors.Is(err, chart.ErrInvalidArgument) {
		t.Fatalf("scatter without comparisons: got %v", err)
	}
	err = execCmd("plot", data, "--kind", "scatter", "--primary", "colour", "--compare", "price", "-o", out)
	if !errors.Is(err, schema.ErrUnknownColumn) {
		t.Fatalf("unknown primary: got %v", err)
	}
	err = execCmd("plot", data, "--kind", "scatter", "--primary", "make", "--compare", "bore", "-o", out)
	if !errors.Is(err, chart.ErrUnknownColumn) {
		t.Fatalf("comparison missing from file: got %v", err)
	}
	err = execCmd("plot", data, "--kind", "pie", "--primary", "make")
	if !errors.Is(err, schema.ErrUnknownKind) {
		t.Fatalf("unknown kind: got %v", err)
	}
	err = execCmd("plot", data, "--kind", "histogram", "--primary", "make", "-o", filepath.Join(home, "x.gif"))
	if !errors.Is(err, chart.ErrUnsupportedFormat) {
		t.Fatalf("gif output: got %v", err)
	}
	err = execCmd("plot", filepath.Join(home, "nope.csv"), "--kind", "histogram", "--primary", "make")
	if !errors.Is(err, dataset.ErrFileNotFound) {
		t.Fatalf("missing dataset: got %v", err)
	}
	// the output format is checked before the dataset is read
	missing := filepath.Join(home, "nope.csv")
	err = execCmd("plot", missing, "--kind", "histogram", "--primary", "make", "-o", filepath.Join(home, "x.bmp"))
	if !errors.Is(err, chart.ErrUnsupportedFormat) {
		t.Fatalf("bad extension before load: got %v", err)
	}
	err = execCmd("plot", missing, "--kind", "histogram", "--primary", "make", "--format", "tiff")
	if !errors.Is(err, chart.ErrUnsupportedFormat) {
		t.Fatalf("bad --format before load: got %v", err)
	}
	err = execCmd("plot", missing, "--kind", "histogram", "--primary", "make", "-o", out, "--width", "0")
	if err == nil || errors.Is(err, dataset.ErrFileNotFound) {
		t.Fatalf("zero width before load: got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("failed runs must not write %s", out)
	}
}

func TestCLI_DescribeAndColumns(t *testing.T) {
	home := isolate(t)
	data := writeAutos(t, home)

	jsonOut := filepath.Join(home, "desc.json")
	runCmd(t, "describe", data, "-o", jsonOut, "--correlations")
	b, err := os.ReadFile(jsonOut)
	if err != nil {
		t.Fatal(err)
	}
	var rep map[string]any
	if err := json.Unmarshal(b, &rep); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rep["rows"].(float64) != 3 {
		t.Fatalf("rows = %v", rep["rows"])
	}

	htmlOut := filepath.Join(home, "desc.html")
	runCmd(t, "describe", data, "-o", htmlOut)
	h, err := os.ReadFile(htmlOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(h), "<html") || !strings.Contains(string(h), "horsepower") {
		t.Fatalf("unexpected html:\n%s", h)
	}

	runCmd(t, "columns", data)
	runCmd(t, "columns", "--registry")
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home := isolate(t)

	runCmd(t, "config", "set", "width_in", "8")
	runCmd(t, "config", "set", "log_level", "debug")
	runCmd(t, "config", "show")
	if cfg == nil || cfg.WidthIn != 8 || cfg.LogLevel != "debug" {
		t.Fatalf("config not reloaded: %+v", cfg)
	}
	b, err := os.ReadFile(filepath.Join(home, ".autoplot", "config.yaml"))
	if err != nil {
		t.Fatalf("config not saved: %v", err)
	}
	if !strings.Contains(string(b), "width_in: 8") {
		t.Fatalf("config file:\n%s", b)
	}

	if err := execCmd("config", "set", "format", "gif"); err == nil {
		t.Fatalf("expected invalid format error")
	}
	if err := execCmd("config", "set", "width_in", "0"); err == nil {
		t.Fatalf("expected invalid width error")
	}
	if err := execCmd("config", "set", "nope", "x"); err == nil {
		t.Fatalf("expected unknown key error")
	}
}
