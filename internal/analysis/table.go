package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/KaramelBytes/autoplot-cli/internal/dataset"
	"github.com/KaramelBytes/autoplot-cli/internal/schema"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"
)

// Options controls what a dataset report includes.
type Options struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// TopValues limits the most frequent values listed per categorical column.
	TopValues int
	// Correlations computes Pearson correlations among numeric columns.
	Correlations bool
}

// DefaultOptions returns reasonable defaults for dataset reports.
func DefaultOptions() Options {
	return Options{SampleRows: 5, TopValues: 5}
}

// Report is a markdown-friendly description of a loaded dataset.
type Report struct {
	Name     string          `json:"name"`
	Rows     int             `json:"rows"`
	Cols     []ColumnSummary `json:"columns"`
	Samples  [][]string      `json:"samples,omitempty"`
	Corr     []PairCorr      `json:"correlations,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ColumnSummary captures inferred kind and statistics per column.
type ColumnSummary struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"` // numeric|categorical
	Recognized bool   `json:"recognized"`
	NonNull    int    `json:"non_null"`
	Missing    int    `json:"missing"`
	Unique     int    `json:"unique"`
	// Numeric stats
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	Mean   float64 `json:"mean,omitempty"`
	Median float64 `json:"median,omitempty"`
	Std    float64 `json:"std,omitempty"`
	// Categorical top values
	TopValues []CategoryCount `json:"top_values,omitempty"`
}

type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PairCorr is a simple correlation pair summary.
type PairCorr struct {
	A string  `json:"a"`
	B string  `json:"b"`
	R float64 `json:"r"`
}

// Describe summarizes every column of ds. Values are only read, never altered.
func Describe(ds *dataset.Dataset, opt Options) *Report {
	rep := &Report{Name: ds.Name(), Rows: ds.Len()}
	sampleRows := opt.SampleRows
	if sampleRows < 0 {
		sampleRows = 0
	}
	for i := 0; i < min(sampleRows, ds.Len()); i++ {
		rep.Samples = append(rep.Samples, ds.Row(i))
	}

	var numericCols []string
	for _, name := range ds.Columns() {
		cs := summarize(ds, name, opt)
		if !cs.Recognized {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("column %q is not a recognized automobile field", name))
		}
		if cs.Kind == dataset.Numeric.String() {
			numericCols = append(numericCols, name)
		}
		rep.Cols = append(rep.Cols, cs)
	}
	for _, c := range schema.Columns() {
		if !ds.Has(string(c)) {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("recognized field %q is missing from the file", c))
		}
	}
	if opt.Correlations {
		rep.Corr = correlations(ds, numericCols)
	}
	return rep
}

func summarize(ds *dataset.Dataset, name string, opt Options) ColumnSummary {
	raw, _ := ds.Values(name)
	kind := ds.Kind(name)
	cs := ColumnSummary{Name: name, Kind: kind.String(), Recognized: schema.IsColumn(name)}

	counts := make(map[string]int)
	for _, v := range raw {
		if dataset.IsMissing(v) {
			cs.Missing++
			continue
		}
		cs.NonNull++
		counts[v]++
	}
	cs.Unique = len(counts)

	if kind == dataset.Numeric {
		vals, valid := ds.Floats(name)
		data := make(stats.Float64Data, 0, len(vals))
		for i, v := range vals {
			if valid[i] {
				data = append(data, v)
			}
		}
		// data is non-empty for numeric columns, so these cannot fail
		cs.Min, _ = stats.Min(data)
		cs.Max, _ = stats.Max(data)
		cs.Mean, _ = stats.Mean(data)
		cs.Median, _ = stats.Median(data)
		cs.Std, _ = stats.StandardDeviation(data)
		return cs
	}

	top := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		top = append(top, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Value < top[j].Value
	})
	limit := opt.TopValues
	if limit <= 0 {
		limit = 5
	}
	cs.TopValues = top[:min(limit, len(top))]
	return cs
}

// correlations computes pairwise Pearson r over rows where both columns have a value.
func correlations(ds *dataset.Dataset, cols []string) []PairCorr {
	var pairs []PairCorr
	for i := 0; i < len(cols); i++ {
		xs, xv := ds.Floats(cols[i])
		for j := i + 1; j < len(cols); j++ {
			ys, yv := ds.Floats(cols[j])
			var a, b stats.Float64Data
			for k := range xs {
				if xv[k] && yv[k] {
					a = append(a, xs[k])
					b = append(b, ys[k])
				}
			}
			if len(a) < 3 {
				continue
			}
			r, err := stats.Correlation(a, b)
			if err != nil || math.IsNaN(r) {
				continue
			}
			pairs = append(pairs, PairCorr{A: cols[i], B: cols[j], R: r})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].R) > math.Abs(pairs[j].R)
	})
	return pairs
}

// Markdown renders the report in the bracketed-section layout used across the CLI.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%)", safeName(c.Name), c.Kind, c.NonNull, missPct))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, median %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Median, c.Std))
		case "categorical":
			if len(c.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
				if c.Unique > len(c.TopValues) {
					b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(r.Corr) > 0 {
		b.WriteString("\n[CORRELATIONS]\n")
		for i := 0; i < min(10, len(r.Corr)); i++ {
			p := r.Corr[i]
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R))
		}
	}
	if len(r.Samples) > 0 {
		b.WriteString("\n[HEAD AND SAMPLE ROWS]\n\n")
		b.WriteString("| ")
		for i, c := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(safeName(c.Name))
		}
		b.WriteString(" |\n| ")
		for i := range r.Cols {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString("---")
		}
		b.WriteString(" |\n")
		for _, row := range r.Samples {
			b.WriteString("| ")
			for i := range r.Cols {
				if i > 0 {
					b.WriteString(" | ")
				}
				val := ""
				if i < len(row) {
					val = row[i]
				}
				if len(val) > 80 {
					val = val[:77] + "..."
				}
				b.WriteString(safeVal(val))
			}
			b.WriteString(" |\n")
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// HTML renders the markdown report as a standalone HTML page.
func (r *Report) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: r.Name,
	})
	return markdown.ToHTML([]byte(r.Markdown()), p, renderer)
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
