// Package render draws a paginated Document to output formats.
package render

import "math"

// PointsPerInch is the PDF and spreadsheet row-height unit ratio.
// 1 inch = 72 points.
const PointsPerInch = 72

// PixelsPerInch is the screen resolution spreadsheets assume for column widths.
const PixelsPerInch = 96

// MaxDigitWidth is the pixel width of one digit in the default spreadsheet
// font (Calibri 11). Column widths are expressed in these characters plus
// 5 pixels of cell padding.
const MaxDigitWidth = 7

// InchesToPoints converts inches to points.
func InchesToPoints(in float64) float64 {
	return in * PointsPerInch
}

// InchesToColumnWidth converts inches to a spreadsheet column width in
// characters, rounded to 1/256 of a character as spreadsheets store it.
func InchesToColumnWidth(in float64) float64 {
	px := in * PixelsPerInch
	chars := (px - 5) / MaxDigitWidth
	if chars < 0 {
		return 0
	}
	return math.Round(chars*256) / 256
}
