package main

import (
	"time"

	"testing"

	"perfgate/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHistoryStore struct {
	records []benchmark.RunRecord
}

func (m *mockHistoryStore) Save(record benchmark.RunRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *mockHistoryStore) LoadAll() ([]benchmark.RunRecord, error) {
	return m.records, nil
}

func (m *mockHistoryStore) LoadLatest() (*benchmark.RunRecord, error) {
	if len(m.records) == 0 {
		return nil, nil
	}
	return &m.records[len(m.records)-1], nil
}

func TestHistoryCmd(t *testing.T) {
	defer func() {
		newHistoryStoreFunc = func(path string) (benchmark.HistoryStore, error) {
			return benchmark.NewFileHistoryStore(path)
		}
	}()

	mock := &mockHistoryStore{records: []benchmark.RunRecord{
		{Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), ResultsFile: "results.json", Successes: 3, Passed: true},
		{Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), ResultsFile: "results.json", Failures: 1, Regressions: 1},
	}}
	newHistoryStoreFunc = func(path string) (benchmark.HistoryStore, error) { return mock, nil }

	out, err := executeGate("history")
	require.NoError(t, err)

	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "results.json")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
}

func TestHistoryCmdEmpty(t *testing.T) {
	defer func() {
		newHistoryStoreFunc = func(path string) (benchmark.HistoryStore, error) {
			return benchmark.NewFileHistoryStore(path)
		}
	}()

	newHistoryStoreFunc = func(path string) (benchmark.HistoryStore, error) {
		return &mockHistoryStore{}, nil
	}

	out, err := executeGate("history")
	require.NoError(t, err)
	assert.Contains(t, out, "No run history found.")
}
