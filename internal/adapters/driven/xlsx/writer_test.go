package xlsx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

func record(source, city string) domain.Record {
	rec := domain.Record{SourceFile: source}
	rec.Fields[0] = city
	for i := 1; i < domain.ColumnCount; i++ {
		rec.Fields[i] = city + "-" + string(rune('0'+i))
	}
	return rec
}

func readRows(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheet}, f.GetSheetList())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged_output.xlsx")
	records := []domain.Record{
		record("a.pdf", "Berlin"),
		record("a.pdf", "Hamburg"),
		record("b.pdf", "Munich"),
	}

	w := NewWriter("")
	require.NoError(t, w.Write(context.Background(), path, domain.OutputHeader(), records))

	rows := readRows(t, path, "Sheet1")
	require.Len(t, rows, 4)
	assert.Equal(t, domain.OutputHeader(), rows[0])
	assert.Len(t, rows[0], 10)
	for i, rec := range records {
		assert.Equal(t, rec.Values(), rows[i+1])
	}
}

func TestWriter_Write_NamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w := NewWriter("Merged")
	require.NoError(t, w.Write(context.Background(), path, domain.OutputHeader(), []domain.Record{record("a.pdf", "Köln")}))

	rows := readRows(t, path, "Merged")
	require.Len(t, rows, 2)
	assert.Equal(t, "Köln", rows[1][1])
}

func TestWriter_Write_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	w := NewWriter("")
	require.NoError(t, w.Write(context.Background(), path, domain.OutputHeader(), []domain.Record{record("a.pdf", "Berlin")}))

	rows := readRows(t, path, "Sheet1")
	assert.Len(t, rows, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriter_Write_RepeatedRunsMatch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.xlsx")
	second := filepath.Join(dir, "second.xlsx")
	records := []domain.Record{record("a.pdf", "Berlin"), record("b.pdf", "Bonn")}

	w := NewWriter("")
	require.NoError(t, w.Write(context.Background(), first, domain.OutputHeader(), records))
	require.NoError(t, w.Write(context.Background(), second, domain.OutputHeader(), records))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, readRows(t, second, "Sheet1"), 3)
}

func TestWriter_Write_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.xlsx")

	w := NewWriter("")
	require.NoError(t, w.Write(context.Background(), path, domain.OutputHeader(), nil))

	rows := readRows(t, path, "Sheet1")
	assert.Equal(t, [][]string{domain.OutputHeader()}, rows)
}

func TestWriter_Write_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriter("").Write(ctx, path, domain.OutputHeader(), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}
