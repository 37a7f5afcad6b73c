package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
)

func TestFilterMatch(t *testing.T) {
	columns := []string{"First Name", "Last Name", "Status"}
	rec := func(status string) models.Record {
		return models.Record{Line: 2, Fields: map[string]string{
			"First Name": "Ada", "Last Name": "Lovelace", "Status": status,
		}}
	}

	tests := []struct {
		source   string
		status   string
		expected bool
	}{
		{`Status == "Registered"`, "Registered", true},
		{`Status == "Registered"`, "Waitlist", false},
		{`record["Last Name"] startsWith "Love"`, "", true},
		{`Status != "" && record["First Name"] == "Ada"`, "Paid", true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			f, err := CompileFilter(tt.source, columns)
			require.NoError(t, err)
			ok, err := f.Match(columns, rec(tt.status))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.source, f.String())
		})
	}
}

func TestCompileFilterErrors(t *testing.T) {
	columns := []string{"First Name", "Last Name", "Status"}

	tests := []string{
		`Status`,         // not a bool
		`Unknown == "x"`, // undefined variable
		`Status == `,     // syntax
	}
	for _, source := range tests {
		_, err := CompileFilter(source, columns)
		assert.Error(t, err, source)
	}
}
