package signsheet

import (
	"fmt"

	"github.com/ukaji3/signsheet-go/pkg/signsheet/layout"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/render"
)

// Result describes a generated sign-in sheet.
type Result struct {
	// PDFPath is the written PDF.
	PDFPath string `json:"pdf_path"`
	// XLSXPath is the written spreadsheet, empty unless requested.
	XLSXPath string `json:"xlsx_path,omitempty"`
	// Records is the number of attendees listed.
	Records int `json:"records"`
	// Capacity is the number of attendees per primary page.
	Capacity int `json:"capacity"`
	// PrimaryPages is the number of attendee pages.
	PrimaryPages int `json:"primary_pages"`
	// SupplementalPages is the number of blank walk-in pages.
	SupplementalPages int `json:"supplemental_pages"`
}

// Generate builds the sign-in sheet for the attendee file at path.
//
// Every step runs before anything is written: on error no artifact is
// created or replaced.
func Generate(path string, opts Options) (*Result, error) {
	log := opts.logger()

	set, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	doc, err := layout.Paginate(set, opts.Geometry, layout.Options{
		Title:             opts.Title(),
		SupplementalPages: opts.SupplementalPages,
		Logger:            log,
	})
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	pdf, err := render.PDF(doc, opts.Geometry, opts.Style)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	if err := render.VerifyPDF(pdf, len(doc.Pages)); err != nil {
		return nil, fmt.Errorf("verify pdf: %w", err)
	}
	log.Debug().Int("bytes", len(pdf)).Int("pages", len(doc.Pages)).Msg("pdf rendered")

	result := &Result{
		PDFPath:           opts.PDFPath(),
		Records:           set.Len(),
		Capacity:          doc.Capacity,
		PrimaryPages:      doc.PrimaryPages(),
		SupplementalPages: doc.SupplementalPages(),
	}
	artifacts := []render.Artifact{{Path: result.PDFPath, Data: pdf}}

	if opts.XLSX {
		xlsx, err := render.XLSX(doc, opts.Geometry, opts.Style)
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
		result.XLSXPath = opts.XLSXPath()
		artifacts = append(artifacts, render.Artifact{Path: result.XLSXPath, Data: xlsx})
		log.Debug().Int("bytes", len(xlsx)).Msg("xlsx rendered")
	}

	if err := render.WriteFiles(artifacts...); err != nil {
		return nil, err
	}

	log.Info().
		Str("output", result.PDFPath).
		Int("records", result.Records).
		Int("primaryPages", result.PrimaryPages).
		Int("supplementalPages", result.SupplementalPages).
		Msg("sign-in sheet written")
	return result, nil
}
