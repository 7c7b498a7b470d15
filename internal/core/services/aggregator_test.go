package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

func threeFileDetector() *fakeDetector {
	return &fakeDetector{tables: map[string][]domain.Table{
		"in/one.pdf":   {{Page: 1, Rows: dataRows("one-", 2)}},
		"in/two.pdf":   {{Page: 1, Rows: append([][]string{headerRow()}, dataRows("two-", 3)...)}},
		"in/three.pdf": nil,
	}}
}

// Scenario: three files yielding 2, 3 and 0 records.
func TestAggregator_MergesInFileOrder(t *testing.T) {
	captureLogs(t)
	writer := &fakeWriter{}
	reporter := &recordingReporter{}
	agg := NewAggregator(NewTableExtractor(threeFileDetector()), writer, "out/merged.xlsx", reporter)

	summary, err := agg.Merge(context.Background(), []string{"in/one.pdf", "in/two.pdf", "in/three.pdf"})

	require.NoError(t, err)
	assert.True(t, summary.Written)
	assert.Equal(t, 5, summary.Rows)
	assert.Equal(t, "out/merged.xlsx", summary.Output)
	require.Len(t, summary.Results, 3)

	assert.Equal(t, 1, writer.writes)
	assert.Equal(t, "out/merged.xlsx", writer.path)
	assert.Equal(t, domain.OutputHeader(), writer.header)
	require.Len(t, writer.records, 5)

	var got []string
	for _, r := range writer.records {
		got = append(got, r.SourceFile+":"+r.Fields[0])
	}
	assert.Equal(t, []string{
		"one.pdf:one-A", "one.pdf:one-B",
		"two.pdf:two-A", "two.pdf:two-B", "two.pdf:two-C",
	}, got)

	assert.Equal(t, []domain.ExtractionStatus{
		domain.StatusExtracted, domain.StatusExtracted, domain.StatusNoTables,
	}, reporter.extracted)
}

// Scenario: no file yields records.
func TestAggregator_NoDataWritesNothing(t *testing.T) {
	captureLogs(t)
	writer := &fakeWriter{}
	detector := &fakeDetector{
		tables: map[string][]domain.Table{"empty.pdf": nil},
		errs:   map[string]error{"bad.pdf": domain.ErrInvalidPDF},
	}
	agg := NewAggregator(NewTableExtractor(detector), writer, "merged.xlsx", nil)

	summary, err := agg.Merge(context.Background(), []string{"empty.pdf", "bad.pdf"})

	require.NoError(t, err)
	assert.False(t, summary.Written)
	assert.Zero(t, summary.Rows)
	assert.Zero(t, writer.writes)
	assert.Len(t, summary.Failed(), 1)
}

func TestAggregator_ZeroFiles(t *testing.T) {
	captureLogs(t)
	writer := &fakeWriter{}
	agg := NewAggregator(NewTableExtractor(&fakeDetector{}), writer, "merged.xlsx", nil)

	summary, err := agg.Merge(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, summary.Written)
	assert.Empty(t, summary.Results)
	assert.Zero(t, writer.writes)
}

func TestAggregator_FailedFileIsExcluded(t *testing.T) {
	captureLogs(t)
	writer := &fakeWriter{}
	detector := &fakeDetector{
		tables: map[string][]domain.Table{
			"good.pdf": {{Page: 1, Rows: dataRows("g", 2)}},
			"bad.pdf":  {{Page: 1, Rows: [][]string{{"too", "short"}}}},
		},
	}
	agg := NewAggregator(NewTableExtractor(detector), writer, "merged.xlsx", nil)

	summary, err := agg.Merge(context.Background(), []string{"bad.pdf", "good.pdf"})

	require.NoError(t, err)
	assert.True(t, summary.Written)
	assert.Equal(t, 2, summary.Rows)
	for _, r := range writer.records {
		assert.Equal(t, "good.pdf", r.SourceFile)
	}
	require.Len(t, summary.Failed(), 1)
	assert.ErrorIs(t, summary.Failed()[0].Err, domain.ErrColumnCount)
}

func TestAggregator_WriteError(t *testing.T) {
	captureLogs(t)
	writer := &fakeWriter{err: errors.New("disk full")}
	agg := NewAggregator(NewTableExtractor(threeFileDetector()), writer, "merged.xlsx", nil)

	summary, err := agg.Merge(context.Background(), []string{"in/one.pdf"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, summary.Written)
}

func TestAggregator_RepeatedRunsWriteSameRecords(t *testing.T) {
	captureLogs(t)
	paths := []string{"in/one.pdf", "in/two.pdf", "in/three.pdf"}

	first := &fakeWriter{}
	_, err := NewAggregator(NewTableExtractor(threeFileDetector()), first, "m.xlsx", nil).
		Merge(context.Background(), paths)
	require.NoError(t, err)

	second := &fakeWriter{}
	_, err = NewAggregator(NewTableExtractor(threeFileDetector()), second, "m.xlsx", nil).
		Merge(context.Background(), paths)
	require.NoError(t, err)

	assert.Equal(t, first.records, second.records)
	assert.Equal(t, first.header, second.header)
}

func TestAggregator_StopsOnCancel(t *testing.T) {
	captureLogs(t)
	writer := &fakeWriter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	agg := NewAggregator(NewTableExtractor(threeFileDetector()), writer, "m.xlsx", nil)

	_, err := agg.Merge(ctx, []string{"in/one.pdf"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, writer.writes)
}
