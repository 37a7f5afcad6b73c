package signsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/parser"
)

// csvExtension is the only accepted input extension.
const csvExtension = ".csv"

// Load reads the attendee file at path and returns its records, cleaned and
// sorted by opts.SortBy.
//
// The extension is checked before the file is opened. Records missing a first
// or last name are dropped silently. The sort is stable: records with equal
// keys keep their file order.
func Load(path string, opts Options) (*models.RecordSet, error) {
	log := opts.logger().With().Str("input", path).Logger()

	if !strings.EqualFold(filepath.Ext(path), csvExtension) {
		return nil, NewFormatError(path)
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := parser.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	log.Debug().Int("records", set.Len()).Strs("columns", set.Columns).Msg("input read")

	var missing []string
	for _, col := range []string{models.ColumnFirstName, models.ColumnLastName} {
		if !set.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, NewSchemaError(path, missing, ErrMissingColumn)
	}

	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if !set.HasColumn(sortBy) {
		return nil, NewSchemaError(path, []string{sortBy}, ErrMissingColumn)
	}

	read := set.Len()
	set.Records = slices.DeleteFunc(set.Records, func(r models.Record) bool {
		return isMissing(r.Get(models.ColumnFirstName)) || isMissing(r.Get(models.ColumnLastName))
	})
	if dropped := read - set.Len(); dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("dropped records without a full name")
	}

	if opts.Filter != "" {
		if err := applyFilter(set, opts.Filter); err != nil {
			return nil, NewSchemaError(path, nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err))
		}
		log.Debug().Str("filter", opts.Filter).Int("kept", set.Len()).Msg("filter applied")
	}

	slices.SortStableFunc(set.Records, func(a, b models.Record) int {
		return strings.Compare(a.Get(sortBy), b.Get(sortBy))
	})

	log.Info().Int("records", set.Len()).Str("sortBy", sortBy).Msg("attendees loaded")
	return set, nil
}

// isMissing reports whether a required value is empty.
func isMissing(v string) bool {
	return strings.TrimSpace(v) == ""
}

func applyFilter(set *models.RecordSet, source string) error {
	filter, err := parser.CompileFilter(source, set.Columns)
	if err != nil {
		return err
	}

	kept := set.Records[:0]
	for _, rec := range set.Records {
		ok, err := filter.Match(set.Columns, rec)
		if err != nil {
			return err
		}
		if ok {
			kept = append(kept, rec)
		}
	}
	set.Records = kept
	return nil
}
