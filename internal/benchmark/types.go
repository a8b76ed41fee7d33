package benchmark

import "time"

// Result represents a single parsed benchmark entry.
type Result struct {
	Name           string             `json:"name"`
	RealTimeNs     float64            `json:"real_time"`
	CPUTimeNs      float64            `json:"cpu_time"`
	Iterations     int64              `json:"iterations"`
	BytesPerSecond *float64           `json:"bytes_per_second,omitempty"`
	ItemsPerSecond *float64           `json:"items_per_second,omitempty"`
	Label          string             `json:"label,omitempty"`
	Counters       map[string]float64 `json:"counters,omitempty"`
}

// Document is a fully loaded benchmark results file.
type Document struct {
	Benchmarks []Result
	// Warnings collects per-entry parse problems (missing required
	// fields). A warned entry is skipped, never failed.
	Warnings []string
}

// RunRecord summarizes one validation run for the history file.
type RunRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	ResultsFile  string    `json:"results_file"`
	Successes    int       `json:"successes"`
	Failures     int       `json:"failures"`
	Warnings     int       `json:"warnings"`
	Regressions  int       `json:"regressions,omitempty"`
	Improvements int       `json:"improvements,omitempty"`
	Passed       bool      `json:"passed"`
}
