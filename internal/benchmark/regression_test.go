package benchmark

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	// regression_percent = (current-baseline)/baseline*100
	class, pct := Classify(106, 100)
	assert.Equal(t, ClassRegression, class)
	assert.InDelta(t, 6.0, pct, 0.01)

	class, pct = Classify(80, 100)
	assert.Equal(t, ClassImprovement, class)
	assert.InDelta(t, -20.0, pct, 0.01)

	class, _ = Classify(103, 100)
	assert.Equal(t, ClassStable, class)

	// Boundaries: +5% is still stable, -15% is already an improvement.
	class, _ = Classify(105, 100)
	assert.Equal(t, ClassStable, class)
	class, _ = Classify(85, 100)
	assert.Equal(t, ClassImprovement, class)
}

func TestAnalyzeFirstSightingCreatesBaseline(t *testing.T) {
	dir := t.TempDir()
	analyzer, err := NewAnalyzer(dir)
	require.NoError(t, err)

	doc := &Document{Benchmarks: []Result{
		{Name: "Foo", RealTimeNs: 100, CPUTimeNs: 100, Iterations: 10},
	}}

	report := analyzer.Analyze(doc)

	assert.True(t, report.Passed())
	assert.Equal(t, 0, report.Regressions)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, ClassNew, report.Entries[0].Class)

	data, err := os.ReadFile(filepath.Join(dir, "Foo.baseline"))
	require.NoError(t, err)
	assert.Equal(t, "100", string(data))
}

func TestAnalyzeRegressionKeepsBaseline(t *testing.T) {
	dir := t.TempDir()
	store, err := NewBaselineStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("Foo", 100))

	analyzer, err := NewAnalyzer(dir)
	require.NoError(t, err)

	doc := &Document{Benchmarks: []Result{
		{Name: "Foo", RealTimeNs: 106, CPUTimeNs: 106, Iterations: 10},
	}}

	report := analyzer.Analyze(doc)

	assert.False(t, report.Passed())
	assert.Equal(t, 1, report.Regressions)

	// Baseline must be untouched after a regression.
	baseline, ok := store.Load("Foo")
	require.True(t, ok)
	assert.Equal(t, 100.0, baseline)
}

func TestAnalyzeImprovementRatchetsBaseline(t *testing.T) {
	dir := t.TempDir()
	store, err := NewBaselineStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("Foo", 100))

	analyzer, err := NewAnalyzer(dir)
	require.NoError(t, err)

	doc := &Document{Benchmarks: []Result{
		{Name: "Foo", RealTimeNs: 80, CPUTimeNs: 80, Iterations: 10},
	}}

	report := analyzer.Analyze(doc)

	assert.True(t, report.Passed())
	assert.Equal(t, 1, report.Improvements)

	baseline, ok := store.Load("Foo")
	require.True(t, ok)
	assert.Equal(t, 80.0, baseline)
}

func TestAnalyzeStableKeepsBaseline(t *testing.T) {
	dir := t.TempDir()
	store, err := NewBaselineStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("Foo", 100))

	analyzer, err := NewAnalyzer(dir)
	require.NoError(t, err)

	doc := &Document{Benchmarks: []Result{
		{Name: "Foo", RealTimeNs: 102, CPUTimeNs: 102, Iterations: 10},
	}}

	report := analyzer.Analyze(doc)

	assert.True(t, report.Passed())
	assert.Equal(t, 0, report.Regressions)
	assert.Equal(t, 0, report.Improvements)

	baseline, _ := store.Load("Foo")
	assert.Equal(t, 100.0, baseline)
}

func TestAnalyzeCorruptBaselineTreatedAsNew(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.baseline"), []byte("not a number"), 0644))

	analyzer, err := NewAnalyzer(dir)
	require.NoError(t, err)

	doc := &Document{Benchmarks: []Result{
		{Name: "Foo", RealTimeNs: 100, CPUTimeNs: 100, Iterations: 10},
	}}

	report := analyzer.Analyze(doc)

	assert.True(t, report.Passed())
	require.Len(t, report.Entries, 1)
	assert.Equal(t, ClassNew, report.Entries[0].Class)

	// The corrupt record is replaced by the current time.
	data, err := os.ReadFile(filepath.Join(dir, "Foo.baseline"))
	require.NoError(t, err)
	assert.Equal(t, "100", string(data))
}

func TestNewAnalyzerCreatesBaselineDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "baselines")
	_, err := NewAnalyzer(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRegressionReportPrint(t *testing.T) {
	report := &RegressionReport{
		Entries: []RegressionEntry{
			{Name: "Slow", Percent: 6.0, Class: ClassRegression},
			{Name: "Fast", Percent: -20.0, Class: ClassImprovement},
			{Name: "Same", Percent: 1.0, Class: ClassStable},
			{Name: "Fresh", Class: ClassNew},
		},
		Regressions:  1,
		Improvements: 1,
	}

	var buf bytes.Buffer
	report.Print(&buf)
	out := buf.String()

	assert.Contains(t, out, "📉 REGRESSION: Slow is 6.0% slower")
	assert.Contains(t, out, "📈 IMPROVEMENT: Fast is 20.0% faster")
	assert.Contains(t, out, "✅ STABLE: Same (+1.0%)")
	assert.Contains(t, out, "Regressions: 1")
	assert.Contains(t, out, "Improvements: 1")
	assert.NotContains(t, out, "Fresh")
}
