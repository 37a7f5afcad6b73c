// Package signsheet builds printable event sign-in sheets from attendee lists.
package signsheet

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/layout"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/render"
)

// Defaults for options left unset on the command line.
const (
	DefaultEvent             = "< Event Name >"
	DefaultDate              = "< Event Date >"
	DefaultSortBy            = models.ColumnLastName
	DefaultSupplementalPages = 3
	DefaultOutputName        = "acm_sign_in.pdf"
)

// Options configures sign-in sheet generation.
type Options struct {
	// Event and Date form the title printed on every page.
	Event string
	Date  string
	// SortBy is the column records are sorted on. It must exist in the header.
	SortBy string
	// Filter is an optional expr-lang expression; only records for which it
	// is true are listed.
	Filter string
	// SupplementalPages is the number of blank walk-in pages.
	SupplementalPages int
	// OutputDir is where the artifacts are written.
	OutputDir string
	// OutputName is the PDF file name.
	OutputName string
	// XLSX also writes a spreadsheet copy next to the PDF.
	XLSX bool
	// Geometry is the page layout.
	Geometry models.Geometry
	// Style holds fonts and alignment.
	Style render.Style
	// Logger receives progress events. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Event:             DefaultEvent,
		Date:              DefaultDate,
		SortBy:            DefaultSortBy,
		SupplementalPages: DefaultSupplementalPages,
		OutputDir:         ".",
		OutputName:        DefaultOutputName,
		Geometry:          models.DefaultGeometry(),
		Style:             render.DefaultStyle(),
	}
}

// Title returns the page title.
func (o Options) Title() string {
	return layout.Title(o.Event, o.Date)
}

// PDFPath returns the PDF output path.
func (o Options) PDFPath() string {
	name := o.OutputName
	if name == "" {
		name = DefaultOutputName
	}
	return filepath.Join(o.OutputDir, name)
}

// XLSXPath returns the spreadsheet output path: the PDF path with an .xlsx
// extension.
func (o Options) XLSXPath() string {
	pdf := o.PDFPath()
	return strings.TrimSuffix(pdf, filepath.Ext(pdf)) + ".xlsx"
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
