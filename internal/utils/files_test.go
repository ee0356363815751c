package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/autoplot-cli/internal/utils"
)

func TestSafeWriteFileCreatesParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "out.txt")
	if err := utils.SafeWriteFile(p, []byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "ok" {
		t.Fatalf("read back %q, %v", b, err)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestExtAndSafeName(t *testing.T) {
	if got := utils.Ext("a/B.PNG"); got != "png" {
		t.Errorf("Ext = %q", got)
	}
	if got := utils.Ext("noext"); got != "" {
		t.Errorf("Ext = %q", got)
	}
	cases := map[string]string{
		"city-mpg":  "city-mpg",
		"a b/c":     "a_b_c",
		"  ":        "_",
		"peak_rpm.": "peak_rpm.",
	}
	for in, want := range cases {
		if got := utils.SafeName(in); got != want {
			t.Errorf("SafeName(%q) = %q want %q", in, got, want)
		}
	}
}
