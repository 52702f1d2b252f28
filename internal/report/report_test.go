package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantines/obfmatch/internal/matcher"
	"github.com/vantines/obfmatch/internal/report"
)

func sampleResult() *matcher.Result {
	return &matcher.Result{
		Classes: matcher.Stat{Matched: 8, Total: 10},
		Methods: matcher.Stat{Matched: 40, Total: 50},
		Fields:  matcher.Stat{Matched: 4, Total: 4},
	}
}

func TestWriteTextRendersPercentages(t *testing.T) {
	runID := uuid.New()
	generated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rep := report.New(runID, generated, sampleResult())

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, runID.String())
	assert.Contains(t, out, "2026-01-02T03:04:05Z")
	assert.Contains(t, out, "classes: 8/10 (80.0%)")
	assert.Contains(t, out, "methods: 40/50 (80.0%)")
	assert.Contains(t, out, "fields:  4/4 (100.0%)")
}

func TestWriteTextHandlesZeroTotalAsFullPercent(t *testing.T) {
	result := &matcher.Result{
		Classes: matcher.Stat{Matched: 0, Total: 0},
		Methods: matcher.Stat{Matched: 0, Total: 0},
		Fields:  matcher.Stat{Matched: 0, Total: 0},
	}
	rep := report.New(uuid.New(), time.Now(), result)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	assert.Contains(t, buf.String(), "classes: 0/0 (100.0%)")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	runID := uuid.New()
	generated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rep := report.New(runID, generated, sampleResult())

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded report.MatchReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, runID, decoded.RunID)
	assert.True(t, generated.Equal(decoded.Generated))
	assert.Equal(t, 8, decoded.Classes.Matched)
	assert.Equal(t, 10, decoded.Classes.Total)
	assert.Equal(t, 40, decoded.Methods.Matched)
	assert.Equal(t, 4, decoded.Fields.Matched)
}

func TestExportWritesJSONAndTextFiles(t *testing.T) {
	dir := t.TempDir()
	runID := uuid.New()
	rep := report.New(runID, time.Now(), sampleResult())

	require.NoError(t, rep.Export(dir))

	jsonPath := filepath.Join(dir, runID.String()+".json")
	txtPath := filepath.Join(dir, runID.String()+".txt")

	jsonBytes, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded report.MatchReport
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, runID, decoded.RunID)

	txtBytes, err := os.ReadFile(txtPath)
	require.NoError(t, err)
	assert.Contains(t, string(txtBytes), runID.String())
}

func TestExportCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "export")
	rep := report.New(uuid.New(), time.Now(), sampleResult())

	require.NoError(t, rep.Export(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
