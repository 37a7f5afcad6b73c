package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
	"golang.org/x/text/encoding/charmap"
)

// PDF draws doc onto pages of the given geometry and returns the file bytes.
// Page breaks come from the Document only; automatic breaking is off.
func PDF(doc *models.Document, g models.Geometry, style Style) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, ErrEmptyDocument
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, g.Margin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(style.Creator, true)
	pdf.SetCatalogSort(true)
	if !style.Created.IsZero() {
		pdf.SetCreationDate(style.Created)
	}

	for _, page := range doc.Pages {
		pdf.AddPage()

		pdf.SetFont(style.TitleFontFamily, "B", style.TitleFontSize)
		pdf.CellFormat(0, g.TitleHeight, toWindows1252(page.Title), "", 1, style.Align, false, 0, "")

		headerSize := style.CellFontSize
		if page.Kind == models.PageSupplemental {
			headerSize = style.SupplementalHeaderFontSize
		}
		pdf.SetFont(style.CellFontFamily, "B", headerSize)
		drawRow(pdf, page.Header, style.Align)

		pdf.SetFont(style.CellFontFamily, "", style.CellFontSize)
		for _, row := range page.Rows {
			drawRow(pdf, row, style.Align)
		}

		if pdf.Err() {
			return nil, fmt.Errorf("draw page: %w", pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawRow draws bordered cells left to right and moves to the next line
// after the last one.
func drawRow(pdf *fpdf.Fpdf, row models.Row, align string) {
	for i, cell := range row.Cells {
		ln := 0
		if i == len(row.Cells)-1 {
			ln = 1
		}
		pdf.CellFormat(cell.Width, row.Height, toWindows1252(cell.Text), "1", ln, align, false, 0, "")
	}
}

// toWindows1252 encodes s for the core PDF fonts. Runes outside the code
// page become '?'.
func toWindows1252(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}
