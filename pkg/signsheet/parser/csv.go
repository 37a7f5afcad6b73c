// Package parser provides attendee file parsing utilities.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
)

// utf8BOM is stripped from the first header cell; spreadsheet exports often add it.
const utf8BOM = "\ufeff"

// ErrNoHeader indicates the input has no header row.
var ErrNoHeader = errors.New("missing header row")

// ReadCSV reads a delimited attendee file.
// The first row is the header; every later non-empty row becomes a Record.
// Short rows are padded with empty values and surplus fields are ignored.
func ReadCSV(r io.Reader) (*models.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[i] = strings.TrimSpace(name)
	}

	set := &models.RecordSet{Columns: columns}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(row) {
			continue
		}
		set.Records = append(set.Records, models.Record{
			Line:   line,
			Fields: mapRow(columns, row),
		})
	}

	return set, nil
}

// mapRow pairs row values with header names. The first occurrence of a
// duplicated header name wins.
func mapRow(columns, row []string) map[string]string {
	fields := make(map[string]string, len(columns))
	for i, name := range columns {
		if _, seen := fields[name]; seen {
			continue
		}
		value := ""
		if i < len(row) {
			value = row[i]
		}
		fields[name] = value
	}
	return fields
}

// isBlank reports whether every cell in row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
