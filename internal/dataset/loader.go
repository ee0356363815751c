package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loader reads one dataset file format.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string) (*Dataset, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// Load selects a loader by file name and reads the dataset. Files no loader claims are read as CSV.
func Load(path string) (*Dataset, error) {
	if err := checkFile(path); err != nil {
		return nil, err
	}
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path)
		}
	}
	return LoadCSV(path)
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("stat dataset: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}
	return nil
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}
