package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionResult_Status(t *testing.T) {
	records := []Record{{SourceFile: "a.pdf"}}

	tests := []struct {
		name   string
		result ExtractionResult
		want   ExtractionStatus
	}{
		{"failed wins over records", ExtractionResult{Tables: 1, Records: records, Err: errors.New("boom")}, StatusFailed},
		{"no tables", ExtractionResult{}, StatusNoTables},
		{"tables but no rows", ExtractionResult{Tables: 2}, StatusEmpty},
		{"extracted", ExtractionResult{Tables: 1, Records: records}, StatusExtracted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Status())
		})
	}
}

func TestExtractionResult_HasRecords(t *testing.T) {
	assert.False(t, ExtractionResult{}.HasRecords())
	assert.False(t, ExtractionResult{Records: []Record{{}}, Err: ErrColumnCount}.HasRecords())
	assert.True(t, ExtractionResult{Tables: 1, Records: []Record{{}}}.HasRecords())
}

func TestMergeSummary_Failed(t *testing.T) {
	summary := MergeSummary{
		Results: []ExtractionResult{
			{SourceFile: "ok.pdf", Tables: 1, Records: []Record{{}}},
			{SourceFile: "bad.pdf", Err: ErrInvalidPDF},
			{SourceFile: "empty.pdf"},
		},
	}

	failed := summary.Failed()

	assert.Len(t, failed, 1)
	assert.Equal(t, "bad.pdf", failed[0].SourceFile)
}
