package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BaselineStore persists one representative time per benchmark name as a
// flat file inside a baseline directory.
type BaselineStore struct {
	dir string
}

// NewBaselineStore creates the baseline directory if needed and returns a
// store rooted there.
func NewBaselineStore(dir string) (*BaselineStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create baseline directory %s: %w", dir, err)
	}
	return &BaselineStore{dir: dir}, nil
}

// Load returns the stored baseline time for a benchmark. A missing,
// unreadable, or non-numeric record reads as no baseline.
func (s *BaselineStore) Load(name string) (float64, bool) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Save overwrites the stored baseline for a benchmark.
func (s *BaselineStore) Save(name string, timeNs float64) error {
	content := strconv.FormatFloat(timeNs, 'f', -1, 64)
	return os.WriteFile(s.path(name), []byte(content), 0644)
}

func (s *BaselineStore) path(name string) string {
	// Parameterized benchmark names can contain path separators; keep one
	// flat record per name.
	safe := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(name)
	return filepath.Join(s.dir, safe+".baseline")
}
