package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved validation run records",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := newHistoryStoreFunc(viper.GetString("history_file"))
	if err != nil {
		return err
	}

	records, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load run history: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No run history found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TIME\tFILE\tPASS\tFAIL\tWARN\tREGR\tSTATUS")
	for _, r := range records {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.ResultsFile, r.Successes, r.Failures, r.Warnings, r.Regressions, status)
	}
	return w.Flush()
}
