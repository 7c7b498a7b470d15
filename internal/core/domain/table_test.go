package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlankRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"nil row", nil, true},
		{"all empty", []string{"", "", ""}, true},
		{"whitespace only", []string{" ", "\t", ""}, true},
		{"one value", []string{"", "x", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlankRow(tt.row))
		})
	}
}
