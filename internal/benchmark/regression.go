package benchmark

import (
	"fmt"
	"io"
	"strings"
)

// Classification of one benchmark against its baseline.
type Classification string

const (
	// ClassNew means no baseline existed; the current time becomes one.
	ClassNew Classification = "new"
	// ClassStable means the delta is within the noise band.
	ClassStable Classification = "stable"
	// ClassRegression means the benchmark got slower than tolerated.
	ClassRegression Classification = "regression"
	// ClassImprovement means the benchmark got enough faster to ratchet
	// the baseline down.
	ClassImprovement Classification = "improvement"
)

const (
	regressionThresholdPercent  = 5.0
	improvementThresholdPercent = -15.0
)

// Classify compares a current time against a baseline. The thresholds are
// asymmetric so run-to-run noise neither flags regressions nor churns the
// baseline: slower than 5% is a regression, at least 15% faster is an
// improvement, anything between is stable.
func Classify(currentNs, baselineNs float64) (Classification, float64) {
	percent := (currentNs - baselineNs) / baselineNs * 100
	switch {
	case percent > regressionThresholdPercent:
		return ClassRegression, percent
	case percent <= improvementThresholdPercent:
		return ClassImprovement, percent
	default:
		return ClassStable, percent
	}
}

// RegressionEntry records the classification of one benchmark.
type RegressionEntry struct {
	Name       string
	CurrentNs  float64
	BaselineNs float64
	Percent    float64
	Class      Classification
}

// RegressionReport accumulates the outcome of one regression analysis.
type RegressionReport struct {
	Entries      []RegressionEntry
	Regressions  int
	Improvements int
	// Warnings holds baseline write failures; persistence is best-effort
	// and never fails the analysis.
	Warnings []string
}

// Passed reports whether no regression was detected.
func (r *RegressionReport) Passed() bool {
	return r.Regressions == 0
}

// Analyzer detects regressions against persisted per-benchmark baselines.
type Analyzer struct {
	store *BaselineStore
}

// NewAnalyzer creates the baseline directory if needed and returns an
// analyzer over it.
func NewAnalyzer(baselineDir string) (*Analyzer, error) {
	store, err := NewBaselineStore(baselineDir)
	if err != nil {
		return nil, err
	}
	return &Analyzer{store: store}, nil
}

// Analyze classifies every benchmark in the document against its stored
// baseline. First sightings persist the current time as the baseline;
// improvements overwrite it; stable results and regressions leave it
// untouched.
func (a *Analyzer) Analyze(doc *Document) *RegressionReport {
	report := &RegressionReport{}

	for i := range doc.Benchmarks {
		res := &doc.Benchmarks[i]

		baseline, ok := a.store.Load(res.Name)
		if !ok {
			a.saveBaseline(report, res.Name, res.RealTimeNs)
			report.Entries = append(report.Entries, RegressionEntry{
				Name:      res.Name,
				CurrentNs: res.RealTimeNs,
				Class:     ClassNew,
			})
			continue
		}

		class, percent := Classify(res.RealTimeNs, baseline)
		switch class {
		case ClassRegression:
			report.Regressions++
		case ClassImprovement:
			report.Improvements++
			a.saveBaseline(report, res.Name, res.RealTimeNs)
		}

		report.Entries = append(report.Entries, RegressionEntry{
			Name:       res.Name,
			CurrentNs:  res.RealTimeNs,
			BaselineNs: baseline,
			Percent:    percent,
			Class:      class,
		})
	}
	return report
}

func (a *Analyzer) saveBaseline(report *RegressionReport, name string, timeNs float64) {
	if err := a.store.Save(name, timeNs); err != nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("failed to save baseline for %s: %v", name, err))
	}
}

// Print writes the regression analysis report.
func (r *RegressionReport) Print(w io.Writer) {
	fmt.Fprintf(w, "\n📈 Regression Analysis\n")
	fmt.Fprintln(w, strings.Repeat("=", 30))

	for _, e := range r.Entries {
		switch e.Class {
		case ClassRegression:
			fmt.Fprintf(w, "📉 REGRESSION: %s is %.1f%% slower\n", e.Name, e.Percent)
		case ClassImprovement:
			fmt.Fprintf(w, "📈 IMPROVEMENT: %s is %.1f%% faster\n", e.Name, -e.Percent)
		case ClassStable:
			fmt.Fprintf(w, "✅ STABLE: %s (%+.1f%%)\n", e.Name, e.Percent)
		}
	}

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warn)
	}

	fmt.Fprintf(w, "\nRegression Summary:\n")
	fmt.Fprintf(w, "  Regressions: %d\n", r.Regressions)
	fmt.Fprintf(w, "  Improvements: %d\n", r.Improvements)
}
