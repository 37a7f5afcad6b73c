// Package layout paginates attendee records into a renderer-agnostic Document.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
)

// HeaderReserve is the number of row slots held back on every primary page
// for the repeated column header.
const HeaderReserve = 2

// ErrNoCapacity indicates geometry that leaves no room for a single data row.
var ErrNoCapacity = errors.New("page geometry leaves no room for data rows")

// ErrNegativePages indicates a negative supplemental page count.
var ErrNegativePages = errors.New("supplemental page count must not be negative")

// Column headers.
var (
	PrimaryHeader      = []string{"Last Name", "First Name", "Signature"}
	SupplementalHeader = []string{"Last Name", "First Name", "ACM Member?(Y/N)", "Work E-email"}
)

// Options configures pagination.
type Options struct {
	// Title is printed at the top of every page.
	Title string
	// SupplementalPages is the number of blank walk-in pages appended after
	// the attendee list.
	SupplementalPages int
	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger
}

// Title formats the page title for an event.
func Title(event, date string) string {
	return fmt.Sprintf("%s - %s", event, date)
}

// Capacity returns the number of data rows that fit on a primary page.
// It is fixed for the whole document.
func Capacity(g models.Geometry) int {
	return int(math.Floor(g.UsableHeight()/g.RowHeight)) - HeaderReserve
}

// Paginate lays out set in order. A new primary page starts every Capacity
// records; an empty set yields no primary pages. The supplemental pages are
// always appended after the primary ones.
func Paginate(set *models.RecordSet, g models.Geometry, opts Options) (*models.Document, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if opts.SupplementalPages < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePages, opts.SupplementalPages)
	}

	capacity := Capacity(g)
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrNoCapacity, capacity)
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	doc := &models.Document{Title: opts.Title, Capacity: capacity}
	widths := g.PrimaryWidths()

	var page *models.Page
	if set != nil {
		for i, rec := range set.Records {
			if i%capacity == 0 {
				if page != nil {
					doc.AddPage(*page)
				}
				page = &models.Page{
					Kind:   models.PagePrimary,
					Title:  opts.Title,
					Header: newRow(g.RowHeight, widths, PrimaryHeader...),
				}
			}
			page.Rows = append(page.Rows, newRow(g.RowHeight, widths,
				rec.Get(models.ColumnLastName), rec.Get(models.ColumnFirstName), ""))
		}
	}
	if page != nil {
		doc.AddPage(*page)
	}

	supWidths := g.SupplementalWidths()
	for i := 0; i < opts.SupplementalPages; i++ {
		sup := models.Page{
			Kind:   models.PageSupplemental,
			Title:  opts.Title,
			Header: newRow(g.SupplementalHeaderHeight, supWidths, SupplementalHeader...),
			Rows:   make([]models.Row, 0, g.SupplementalRows),
		}
		for j := 0; j < g.SupplementalRows; j++ {
			sup.Rows = append(sup.Rows, newRow(g.SupplementalRowHeight, supWidths))
		}
		doc.AddPage(sup)
	}

	log.Debug().
		Int("records", set.Len()).
		Int("capacity", capacity).
		Int("primaryPages", doc.PrimaryPages()).
		Int("supplementalPages", doc.SupplementalPages()).
		Msg("document paginated")

	return doc, nil
}

// newRow builds a row with one cell per width. Missing texts leave cells blank.
func newRow(height float64, widths []float64, texts ...string) models.Row {
	row := models.Row{Height: height, Cells: make([]models.Cell, len(widths))}
	for i, w := range widths {
		row.Cells[i].Width = w
		if i < len(texts) {
			row.Cells[i].Text = texts[i]
		}
	}
	return row
}
