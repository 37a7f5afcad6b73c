package render

import (
	"fmt"
	"strings"

	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
	"github.com/xuri/excelize/v2"
)

// letterPaperSize is the spreadsheet paper size code for US Letter.
const letterPaperSize = 1

// Sheet name prefixes per page kind.
const (
	PrimarySheetPrefix      = "Attendees"
	SupplementalSheetPrefix = "Walk-ins"
)

// XLSX renders doc as a workbook with one sheet per page, for organizers who
// prefer to print or edit the sheet in a spreadsheet.
func XLSX(doc *models.Document, g models.Geometry, style Style) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, ErrEmptyDocument
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f, style)
	if err != nil {
		return nil, err
	}

	counters := map[models.PageKind]int{}
	for i, page := range doc.Pages {
		counters[page.Kind]++
		name := SheetName(page.Kind, counters[page.Kind])

		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("add sheet %q: %w", name, err)
		}

		if err := writeSheet(f, name, page, g, styles); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// SheetName returns the sheet name of the n-th (1-based) page of kind.
func SheetName(kind models.PageKind, n int) string {
	prefix := PrimarySheetPrefix
	if kind == models.PageSupplemental {
		prefix = SupplementalSheetPrefix
	}
	return fmt.Sprintf("%s %d", prefix, n)
}

type sheetStyles struct {
	title, header, supplementalHeader, cell int
}

func newSheetStyles(f *excelize.File, style Style) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	align := &excelize.Alignment{Horizontal: style.horizontal(), Vertical: "center", WrapText: true}
	titleFont := spreadsheetFont(style.TitleFontFamily)
	cellFont := spreadsheetFont(style.CellFontFamily)

	var (
		s   sheetStyles
		err error
	)
	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: titleFont, Size: style.TitleFontSize},
		Alignment: &excelize.Alignment{Horizontal: style.horizontal(), Vertical: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: cellFont, Size: style.CellFontSize},
		Border:    border,
		Alignment: align,
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	s.supplementalHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: cellFont, Size: style.SupplementalHeaderFontSize},
		Border:    border,
		Alignment: align,
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	s.cell, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: cellFont, Size: style.CellFontSize},
		Border:    border,
		Alignment: align,
	})
	if err != nil {
		return s, fmt.Errorf("create cell style: %w", err)
	}
	return s, nil
}

// spreadsheetFont maps a PDF core font name to the installed font a
// spreadsheet application will find.
func spreadsheetFont(family string) string {
	switch strings.ToLower(family) {
	case "times":
		return "Times New Roman"
	case "helvetica", "arial":
		return "Arial"
	case "courier":
		return "Courier New"
	default:
		return family
	}
}

func writeSheet(f *excelize.File, sheet string, page models.Page, g models.Geometry, styles sheetStyles) error {
	cols := len(page.Header.Cells)
	if cols == 0 {
		return nil
	}
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}

	for i, cell := range page.Header.Cells {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, InchesToColumnWidth(cell.Width)); err != nil {
			return err
		}
	}

	// Title across every column.
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", page.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.title); err != nil {
		return err
	}
	if err := f.SetRowHeight(sheet, 1, InchesToPoints(g.TitleHeight)); err != nil {
		return err
	}

	headerStyle := styles.header
	if page.Kind == models.PageSupplemental {
		headerStyle = styles.supplementalHeader
	}
	if err := writeRow(f, sheet, 2, page.Header, headerStyle); err != nil {
		return err
	}
	for i, row := range page.Rows {
		if err := writeRow(f, sheet, i+3, row, styles.cell); err != nil {
			return err
		}
	}

	return setPrintLayout(f, sheet, g)
}

func writeRow(f *excelize.File, sheet string, rowNum int, row models.Row, styleID int) error {
	values := make([]interface{}, len(row.Cells))
	for i, cell := range row.Cells {
		values[i] = cell.Text
	}

	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(row.Cells), rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, start, end, styleID); err != nil {
		return err
	}
	return f.SetRowHeight(sheet, rowNum, InchesToPoints(row.Height))
}

// setPrintLayout prints each sheet portrait on Letter with the PDF margins.
func setPrintLayout(f *excelize.File, sheet string, g models.Geometry) error {
	size := letterPaperSize
	orientation := "portrait"
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return err
	}

	margin := g.Margin
	return f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Top:    &margin,
		Bottom: &margin,
		Left:   &margin,
		Right:  &margin,
	})
}
