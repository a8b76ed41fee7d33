package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
)

// rawResult mirrors Result with pointer fields so missing required keys
// are distinguishable from zero values.
type rawResult struct {
	Name           *string            `json:"name"`
	RealTime       *float64           `json:"real_time"`
	CPUTime        *float64           `json:"cpu_time"`
	Iterations     *int64             `json:"iterations"`
	BytesPerSecond *float64           `json:"bytes_per_second"`
	ItemsPerSecond *float64           `json:"items_per_second"`
	Label          string             `json:"label"`
	Counters       map[string]float64 `json:"counters"`
}

// LoadDocument reads and parses a benchmark results file. A missing file,
// invalid JSON, or a missing top-level "benchmarks" key is an error.
// Malformed individual entries are demoted to warnings on the document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading benchmark results: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument parses raw results JSON. See LoadDocument.
func ParseDocument(data []byte) (*Document, error) {
	var top struct {
		Benchmarks *[]json.RawMessage `json:"benchmarks"`
	}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("error loading benchmark results: %w", err)
	}
	if top.Benchmarks == nil {
		return nil, fmt.Errorf("invalid benchmark results format: missing 'benchmarks' key")
	}

	doc := &Document{}
	for i, raw := range *top.Benchmarks {
		res, warn := parseResult(i, raw)
		if warn != "" {
			doc.Warnings = append(doc.Warnings, warn)
			continue
		}
		doc.Benchmarks = append(doc.Benchmarks, *res)
	}
	return doc, nil
}

func parseResult(index int, raw json.RawMessage) (*Result, string) {
	var r rawResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Sprintf("malformed benchmark entry #%d: %v", index, err)
	}

	missing := ""
	switch {
	case r.Name == nil:
		missing = "name"
	case r.RealTime == nil:
		missing = "real_time"
	case r.CPUTime == nil:
		missing = "cpu_time"
	case r.Iterations == nil:
		missing = "iterations"
	}
	if missing != "" {
		name := fmt.Sprintf("entry #%d", index)
		if r.Name != nil {
			name = *r.Name
		}
		return nil, fmt.Sprintf("malformed benchmark result %s: missing key '%s'", name, missing)
	}

	return &Result{
		Name:           *r.Name,
		RealTimeNs:     *r.RealTime,
		CPUTimeNs:      *r.CPUTime,
		Iterations:     *r.Iterations,
		BytesPerSecond: r.BytesPerSecond,
		ItemsPerSecond: r.ItemsPerSecond,
		Label:          r.Label,
		Counters:       r.Counters,
	}, ""
}
