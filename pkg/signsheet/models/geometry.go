package models

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry indicates page geometry that cannot hold a sign-in page.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// Fractions of the usable width taken by each column.
const (
	PrimaryNameFraction        = 0.25
	PrimarySignatureFraction   = 0.50
	SupplementalNameFraction   = 0.20
	SupplementalMemberFraction = 0.20
	SupplementalEmailFraction  = 0.40
)

// Geometry holds the fixed page layout. All lengths are in inches.
type Geometry struct {
	// PageWidth is the physical page width.
	PageWidth float64 `json:"page_width"`
	// PageHeight is the physical page height.
	PageHeight float64 `json:"page_height"`
	// Margin is applied on every edge.
	Margin float64 `json:"margin"`
	// TitleHeight is the height of the title line at the top of each page.
	TitleHeight float64 `json:"title_height"`
	// RowHeight is the height of header and data rows on primary pages.
	RowHeight float64 `json:"row_height"`
	// SupplementalHeaderHeight is the header row height on supplemental pages.
	SupplementalHeaderHeight float64 `json:"supplemental_header_height"`
	// SupplementalRowHeight is the blank row height on supplemental pages.
	SupplementalRowHeight float64 `json:"supplemental_row_height"`
	// SupplementalRows is the number of blank rows per supplemental page.
	SupplementalRows int `json:"supplemental_rows"`
}

// DefaultGeometry returns the US Letter layout with 1 cm margins.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:                8.5,
		PageHeight:               11,
		Margin:                   0.393701,
		TitleHeight:              1,
		RowHeight:                0.75,
		SupplementalHeaderHeight: 0.4,
		SupplementalRowHeight:    0.75,
		SupplementalRows:         10,
	}
}

// UsableWidth returns the page width inside the margins.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// UsableHeight returns the height left for table rows once margins and the
// title line are taken off.
func (g Geometry) UsableHeight() float64 {
	return g.PageHeight - 2*g.Margin - g.TitleHeight
}

// PrimaryWidths returns the last name, first name and signature column widths.
func (g Geometry) PrimaryWidths() []float64 {
	w := g.UsableWidth()
	return []float64{w * PrimaryNameFraction, w * PrimaryNameFraction, w * PrimarySignatureFraction}
}

// SupplementalWidths returns the last name, first name, member and email
// column widths.
func (g Geometry) SupplementalWidths() []float64 {
	w := g.UsableWidth()
	return []float64{
		w * SupplementalNameFraction,
		w * SupplementalNameFraction,
		w * SupplementalMemberFraction,
		w * SupplementalEmailFraction,
	}
}

// Validate checks that every dimension is positive and that a supplemental
// page fits inside the usable height.
func (g Geometry) Validate() error {
	switch {
	case g.PageWidth <= 0 || g.PageHeight <= 0:
		return fmt.Errorf("%w: page size %gx%g", ErrInvalidGeometry, g.PageWidth, g.PageHeight)
	case g.Margin < 0:
		return fmt.Errorf("%w: negative margin %g", ErrInvalidGeometry, g.Margin)
	case g.UsableWidth() <= 0:
		return fmt.Errorf("%w: margins leave no usable width", ErrInvalidGeometry)
	case g.TitleHeight <= 0 || g.RowHeight <= 0:
		return fmt.Errorf("%w: title and row heights must be positive", ErrInvalidGeometry)
	case g.SupplementalHeaderHeight <= 0 || g.SupplementalRowHeight <= 0:
		return fmt.Errorf("%w: supplemental row heights must be positive", ErrInvalidGeometry)
	case g.SupplementalRows < 0:
		return fmt.Errorf("%w: negative supplemental row count %d", ErrInvalidGeometry, g.SupplementalRows)
	}

	need := g.SupplementalHeaderHeight + float64(g.SupplementalRows)*g.SupplementalRowHeight
	if need > g.UsableHeight() {
		return fmt.Errorf("%w: supplemental page needs %.3fin, only %.3fin usable",
			ErrInvalidGeometry, need, g.UsableHeight())
	}
	return nil
}
