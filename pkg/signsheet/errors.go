package signsheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a csv file.
var ErrInvalidFormat = errors.New("invalid csv format")

// ErrMissingColumn indicates a required or requested column is absent.
var ErrMissingColumn = errors.New("missing column")

// ErrInvalidFilter indicates a record filter that does not compile or
// evaluate to a bool.
var ErrInvalidFilter = errors.New("invalid record filter")

// FormatError reports an input path without the csv extension.
type FormatError struct {
	Path      string
	Extension string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s is not a valid csv file", filepath.Base(e.Path))
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// NewFormatError creates a new FormatError.
func NewFormatError(path string) *FormatError {
	return &FormatError{
		Path:      path,
		Extension: filepath.Ext(path),
	}
}

// SchemaError reports input whose columns cannot produce a sign-in sheet.
type SchemaError struct {
	Path    string
	Columns []string // missing columns, if any
	Err     error
}

func (e *SchemaError) Error() string {
	name := filepath.Base(e.Path)
	if len(e.Columns) > 0 {
		return fmt.Sprintf("schema error in %s: columns %s not in datafile: %v",
			name, quoteAll(e.Columns), e.Err)
	}
	return fmt.Sprintf("schema error in %s: %v", name, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(path string, columns []string, err error) *SchemaError {
	return &SchemaError{
		Path:    path,
		Columns: columns,
		Err:     err,
	}
}

func quoteAll(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
