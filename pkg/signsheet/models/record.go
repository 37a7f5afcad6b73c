// Package models defines data structures for sign-in sheet generation.
package models

// Required name columns.
const (
	ColumnFirstName = "First Name"
	ColumnLastName  = "Last Name"
)

// Record represents a single attendee row from the input file.
type Record struct {
	// Line is the source line number (1-based, header is line 1).
	Line int `json:"line"`
	// Fields maps column name to cell value.
	Fields map[string]string `json:"fields"`
}

// Get returns the value of column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.Fields[column]
}

// RecordSet is the cleaned, sorted collection of records for a single run.
type RecordSet struct {
	// Columns is the header row in file order.
	Columns []string `json:"columns"`
	// Records is the ordered record sequence.
	Records []Record `json:"records"`
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// HasColumn reports whether the header contains column.
func (s *RecordSet) HasColumn(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}
