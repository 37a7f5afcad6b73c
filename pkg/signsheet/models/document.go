package models

// PageKind distinguishes attendee pages from blank walk-in pages.
type PageKind string

const (
	// PagePrimary lists attendee records with a signature column.
	PagePrimary PageKind = "primary"
	// PageSupplemental holds blank rows for unregistered attendees.
	PageSupplemental PageKind = "supplemental"
)

// Cell is one bordered table cell.
type Cell struct {
	// Text is the cell content; empty for cells filled in by hand.
	Text string `json:"text"`
	// Width is the cell width in inches.
	Width float64 `json:"width"`
}

// Row is one table row.
type Row struct {
	// Height is the row height in inches.
	Height float64 `json:"height"`
	// Cells are laid out left to right.
	Cells []Cell `json:"cells"`
}

// Page is one rendered page: a title line, a bold header row and data rows.
type Page struct {
	Kind   PageKind `json:"kind"`
	Title  string   `json:"title"`
	Header Row      `json:"header"`
	Rows   []Row    `json:"rows"`
}

// Document is the ordered page sequence written to the output artifact.
type Document struct {
	// Title is the text repeated at the top of every page.
	Title string `json:"title"`
	// Capacity is the number of data rows per primary page.
	Capacity int    `json:"capacity"`
	Pages    []Page `json:"pages"`
}

// AddPage appends a page.
func (d *Document) AddPage(p Page) {
	d.Pages = append(d.Pages, p)
}

// PrimaryPages returns the number of attendee pages.
func (d *Document) PrimaryPages() int {
	return d.count(PagePrimary)
}

// SupplementalPages returns the number of blank walk-in pages.
func (d *Document) SupplementalPages() int {
	return d.count(PageSupplemental)
}

func (d *Document) count(kind PageKind) int {
	n := 0
	for _, p := range d.Pages {
		if p.Kind == kind {
			n++
		}
	}
	return n
}
