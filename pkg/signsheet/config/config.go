// Package config loads signsheet settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/signsheet-go/pkg/signsheet"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a config file with out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// File mirrors the command-line flags. Pointer fields are nil when the key
// is absent, so only keys present in the file override defaults.
type File struct {
	Event          *string       `yaml:"event"`
	Date           *string       `yaml:"date"`
	SortBy         *string       `yaml:"sort_by"`
	Filter         *string       `yaml:"filter"`
	NonMemberPages *int          `yaml:"non_member_pages"`
	OutputDir      *string       `yaml:"output_dir"`
	OutputName     *string       `yaml:"output_name"`
	XLSX           *bool         `yaml:"xlsx"`
	Fonts          FontsConfig   `yaml:"fonts"`
	Logging        LoggingConfig `yaml:"logging"`
}

// FontsConfig holds font settings. Sizes are in points.
type FontsConfig struct {
	Title       *float64 `yaml:"title"`
	Cell        *float64 `yaml:"cell"`
	TitleFamily *string  `yaml:"title_family"`
	CellFamily  *string  `yaml:"cell_family"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// Load reads and validates the YAML config at path. Unknown keys are errors.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Validate checks value ranges.
func (f *File) Validate() error {
	if f.NonMemberPages != nil && *f.NonMemberPages < 0 {
		return fmt.Errorf("%w: non_member_pages must be >= 0, got %d", ErrInvalidConfig, *f.NonMemberPages)
	}
	if f.Fonts.Title != nil && *f.Fonts.Title <= 0 {
		return fmt.Errorf("%w: fonts.title must be > 0", ErrInvalidConfig)
	}
	if f.Fonts.Cell != nil && *f.Fonts.Cell <= 0 {
		return fmt.Errorf("%w: fonts.cell must be > 0", ErrInvalidConfig)
	}
	switch f.Logging.Format {
	case "", FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: logging.format must be %q or %q, got %q",
			ErrInvalidConfig, FormatConsole, FormatJSON, f.Logging.Format)
	}
	return nil
}

// Apply copies every key present in the file onto opts.
func (f *File) Apply(opts *signsheet.Options) {
	setString(&opts.Event, f.Event)
	setString(&opts.Date, f.Date)
	setString(&opts.SortBy, f.SortBy)
	setString(&opts.Filter, f.Filter)
	setString(&opts.OutputDir, f.OutputDir)
	setString(&opts.OutputName, f.OutputName)
	setString(&opts.Style.TitleFontFamily, f.Fonts.TitleFamily)
	setString(&opts.Style.CellFontFamily, f.Fonts.CellFamily)
	if f.NonMemberPages != nil {
		opts.SupplementalPages = *f.NonMemberPages
	}
	if f.XLSX != nil {
		opts.XLSX = *f.XLSX
	}
	if f.Fonts.Title != nil {
		opts.Style.TitleFontSize = *f.Fonts.Title
	}
	if f.Fonts.Cell != nil {
		opts.Style.CellFontSize = *f.Fonts.Cell
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
