package benchmark

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// memoryCounterKeys are the counter names probed for a memory measurement,
// in priority order. The first one present wins.
var memoryCounterKeys = []string{
	"allocations_bytes",
	"memory_used_bytes",
	"memory_leak_bytes",
	"bytes_per_value",
}

// Report accumulates the outcome of one validation run.
type Report struct {
	Successes []string
	Failures  []string
	Warnings  []string
}

// Passed reports whether no evaluated bound failed.
func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// Validator checks benchmark results against a target catalog.
type Validator struct {
	catalog Catalog
}

// NewValidator returns a validator using the default target catalog.
func NewValidator() *Validator {
	return &Validator{catalog: DefaultCatalog()}
}

// NewValidatorWithCatalog returns a validator using a custom catalog.
func NewValidatorWithCatalog(c Catalog) *Validator {
	return &Validator{catalog: c}
}

// Validate checks every benchmark in the document against its matching
// target. Benchmarks without a matching target pass implicitly and produce
// no messages. Parse warnings from the document are carried onto the
// report.
func (v *Validator) Validate(doc *Document) *Report {
	report := &Report{}
	report.Warnings = append(report.Warnings, doc.Warnings...)

	for i := range doc.Benchmarks {
		v.validateResult(&doc.Benchmarks[i], report)
	}
	return report
}

func (v *Validator) validateResult(res *Result, report *Report) {
	target := v.catalog.Match(res.Name)
	if target == nil {
		return
	}

	if target.MaxTimeNs != nil {
		if res.RealTimeNs > *target.MaxTimeNs {
			report.Failures = append(report.Failures,
				fmt.Sprintf("❌ %s: %.2fns > %sns target", res.Name, res.RealTimeNs, formatBound(*target.MaxTimeNs)))
		} else {
			report.Successes = append(report.Successes,
				fmt.Sprintf("✅ %s: %.2fns (target: <%sns)", res.Name, res.RealTimeNs, formatBound(*target.MaxTimeNs)))
		}
	}

	if target.MinThroughputMBps != nil && res.BytesPerSecond != nil {
		mbps := *res.BytesPerSecond / (1024 * 1024)
		if mbps < *target.MinThroughputMBps {
			report.Failures = append(report.Failures,
				fmt.Sprintf("❌ %s: %.1fMB/s < %sMB/s target", res.Name, mbps, formatBound(*target.MinThroughputMBps)))
		} else {
			report.Successes = append(report.Successes,
				fmt.Sprintf("✅ %s: %.1fMB/s (target: >%sMB/s)", res.Name, mbps, formatBound(*target.MinThroughputMBps)))
		}
	}

	if target.MaxMemoryBytes != nil {
		if used, ok := extractMemoryUsage(res); ok {
			if used > *target.MaxMemoryBytes {
				report.Failures = append(report.Failures,
					fmt.Sprintf("❌ %s: %d bytes > %d bytes target", res.Name, used, *target.MaxMemoryBytes))
			} else {
				report.Successes = append(report.Successes,
					fmt.Sprintf("✅ %s: %d bytes (target: <=%d bytes)", res.Name, used, *target.MaxMemoryBytes))
			}
		}
	}
}

// extractMemoryUsage scans the result counters for a memory measurement.
func extractMemoryUsage(res *Result) (int64, bool) {
	if len(res.Counters) == 0 {
		return 0, false
	}
	for _, key := range memoryCounterKeys {
		if v, ok := res.Counters[key]; ok {
			return int64(v), true
		}
	}
	return 0, false
}

// formatBound renders a bound the way the report has always shown it:
// whole-number bounds keep a trailing ".0" (so a 1ns budget prints "1.0ns").
func formatBound(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Print writes the validation summary.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "\n📊 Validation Summary\n")
	fmt.Fprintln(w, strings.Repeat("=", 30))
	fmt.Fprintf(w, "✅ Passed: %d\n", len(r.Successes))
	fmt.Fprintf(w, "❌ Failed: %d\n", len(r.Failures))
	fmt.Fprintf(w, "⚠️  Warnings: %d\n", len(r.Warnings))

	if len(r.Failures) > 0 {
		fmt.Fprintf(w, "\n🔥 Performance Target Failures:\n")
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\n⚠️  Performance Warnings:\n")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  %s\n", warn)
		}
	}

	if len(r.Failures) == 0 {
		fmt.Fprintf(w, "\n🎉 ALL PERFORMANCE TARGETS MET!\n")
	} else {
		fmt.Fprintf(w, "\n💪 Performance optimization needed before release.\n")
		fmt.Fprintf(w, "Please address the failed targets above.\n")
	}
}
