package render

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrPageCountMismatch indicates a rendered PDF whose page count differs
// from the laid-out Document.
var ErrPageCountMismatch = errors.New("rendered page count does not match layout")

var disableConfigDir sync.Once

// PageCount parses data and returns its page count.
func PageCount(data []byte) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("read rendered pdf: %w", err)
	}
	return n, nil
}

// VerifyPDF checks that data is a readable PDF with exactly wantPages pages.
func VerifyPDF(data []byte, wantPages int) error {
	got, err := PageCount(data)
	if err != nil {
		return err
	}
	if got != wantPages {
		return fmt.Errorf("%w: got %d, want %d", ErrPageCountMismatch, got, wantPages)
	}
	return nil
}
