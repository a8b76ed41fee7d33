package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"perfgate/internal/benchmark"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newHistoryStoreFunc allows mocking in tests.
var newHistoryStoreFunc = func(path string) (benchmark.HistoryStore, error) {
	return benchmark.NewFileHistoryStore(path)
}

func runValidate(cmd *cobra.Command, args []string) error {
	resultsFile := args[0]
	out := cmd.OutOrStdout()

	if _, err := os.Stat(resultsFile); err != nil {
		return fmt.Errorf("benchmark results file not found: %s", resultsFile)
	}

	fmt.Fprintln(out, "🚀 Performance Validation")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	// Load the document once; both components run over it.
	doc, err := benchmark.LoadDocument(resultsFile)
	if err != nil {
		fmt.Fprintln(out, err)
		if viper.GetBool("strict") {
			fmt.Fprintln(out, "\n❌ Performance validation failed!")
			exit(1)
		}
		fmt.Fprintln(out, "\n✅ Performance validation completed.")
		return nil
	}

	validator := benchmark.NewValidator()
	report := validator.Validate(doc)
	report.Print(out)

	var regReport *benchmark.RegressionReport
	regressionsPassed := true
	if viper.GetBool("regression_analysis") {
		analyzer, err := benchmark.NewAnalyzer(viper.GetString("baseline_dir"))
		if err != nil {
			return err
		}
		regReport = analyzer.Analyze(doc)
		regReport.Print(out)
		regressionsPassed = regReport.Passed()
	}

	if viper.GetBool("save") {
		if err := saveRunRecord(resultsFile, report, regReport); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save run record: %v\n", err)
		}
	}

	if viper.GetBool("strict") && (!report.Passed() || !regressionsPassed) {
		fmt.Fprintln(out, "\n❌ Performance validation failed!")
		exit(1)
	}

	fmt.Fprintln(out, "\n✅ Performance validation completed.")
	return nil
}

func saveRunRecord(resultsFile string, report *benchmark.Report, regReport *benchmark.RegressionReport) error {
	store, err := newHistoryStoreFunc(viper.GetString("history_file"))
	if err != nil {
		return err
	}

	record := benchmark.RunRecord{
		Timestamp:   time.Now(),
		ResultsFile: resultsFile,
		Successes:   len(report.Successes),
		Failures:    len(report.Failures),
		Warnings:    len(report.Warnings),
		Passed:      report.Passed(),
	}
	if regReport != nil {
		record.Regressions = regReport.Regressions
		record.Improvements = regReport.Improvements
		record.Passed = record.Passed && regReport.Passed()
	}

	return store.Save(record)
}
