package render

import (
	"errors"
	"time"
)

// ErrEmptyDocument indicates a document with no pages.
var ErrEmptyDocument = errors.New("document has no pages")

// Style holds fonts and alignment shared by every adapter.
type Style struct {
	// TitleFontFamily is the font of the title line.
	TitleFontFamily string
	// CellFontFamily is the font of header and data cells.
	CellFontFamily string
	// TitleFontSize is in points.
	TitleFontSize float64
	// CellFontSize is in points.
	CellFontSize float64
	// SupplementalHeaderFontSize is the header font size on walk-in pages,
	// kept small so the long column labels fit.
	SupplementalHeaderFontSize float64
	// Align is "L", "C" or "R".
	Align string
	// Creator is recorded in the document metadata.
	Creator string
	// Created pins the document creation date. Zero means now.
	Created time.Time
}

// DefaultStyle returns the Times-based style used for sign-in sheets.
func DefaultStyle() Style {
	return Style{
		TitleFontFamily:            "Times",
		CellFontFamily:             "Times",
		TitleFontSize:              20,
		CellFontSize:               25,
		SupplementalHeaderFontSize: 11,
		Align:                      "C",
		Creator:                    "signsheet",
	}
}

// horizontal maps Align to the spreadsheet alignment keyword.
func (s Style) horizontal() string {
	switch s.Align {
	case "L":
		return "left"
	case "R":
		return "right"
	default:
		return "center"
	}
}
