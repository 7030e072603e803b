package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "$0"},
		{"30", "$30"},
		{"1234", "$1,234"},
		{"1234567.89", "$1,234,568"},
		{"$1,000", "$1,000"},
		{"-1234", "-$1,234"},
		{"", "$0"},
		{"bad", "$0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCurrency(tt.input), "input %q", tt.input)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2026-03-05", "03/05/2026"},
		{"3/5/2026", "03/05/2026"},
		{"03/05/2026", "03/05/2026"},
		{"Mar 5, 2026", "03/05/2026"},
		{"", ""},
		{"not a date", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDate(tt.input), "input %q", tt.input)
	}
}

func TestIsDateColumn(t *testing.T) {
	assert.True(t, IsDateColumn("Start Date"))
	assert.True(t, IsDateColumn("date"))
	assert.False(t, IsDateColumn("Monthly Amount"))
}
