package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "\ufeffFirst Name, Last Name,Email\n" +
		"Ada,Lovelace,ada@example.com\n" +
		"\n" +
		",,\n" +
		"Alan,Turing\n" +
		"Grace,Hopper,grace@example.com,extra\n"

	set, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"First Name", "Last Name", "Email"}, set.Columns)
	require.Len(t, set.Records, 3)

	assert.Equal(t, "Ada", set.Records[0].Get("First Name"))
	assert.Equal(t, 2, set.Records[0].Line)

	// Short row padded.
	assert.Equal(t, "Turing", set.Records[1].Get("Last Name"))
	assert.Equal(t, "", set.Records[1].Get("Email"))
	assert.Equal(t, 5, set.Records[1].Line)

	// Surplus field dropped.
	assert.Len(t, set.Records[2].Fields, 3)
	assert.Equal(t, "grace@example.com", set.Records[2].Get("Email"))
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	set, err := ReadCSV(strings.NewReader("First Name,Last Name\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.HasColumn("Last Name"))
}

func TestReadCSVMalformedQuote(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("First Name,Last Name\n\"Ada,Lovelace\n"))
	assert.Error(t, err)
}

func TestMapRow(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		row      []string
		expected map[string]string
	}{
		{
			name:     "exact",
			columns:  []string{"a", "b"},
			row:      []string{"1", "2"},
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "short row",
			columns:  []string{"a", "b"},
			row:      []string{"1"},
			expected: map[string]string{"a": "1", "b": ""},
		},
		{
			name:     "duplicate header keeps first",
			columns:  []string{"a", "a"},
			row:      []string{"1", "2"},
			expected: map[string]string{"a": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapRow(tt.columns, tt.row))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(nil))
	assert.True(t, isBlank([]string{"", "  "}))
	assert.False(t, isBlank([]string{"", "x"}))
}
