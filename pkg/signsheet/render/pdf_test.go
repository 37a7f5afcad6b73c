package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
)

func TestPDFPageCount(t *testing.T) {
	tests := []struct {
		name         string
		records      int
		supplemental int
		pages        int
	}{
		{"records and walk-ins", 3, 3, 4},
		{"several primary pages", 25, 3, 6},
		{"walk-ins only", 0, 2, 2},
		{"records only", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument(t, tt.records, tt.supplemental)
			require.Len(t, doc.Pages, tt.pages)

			data, err := PDF(doc, models.DefaultGeometry(), testStyle())
			require.NoError(t, err)
			assert.Equal(t, "%PDF-", string(data[:5]))

			n, err := PageCount(data)
			require.NoError(t, err)
			assert.Equal(t, tt.pages, n)
			assert.NoError(t, VerifyPDF(data, tt.pages))
		})
	}
}

func TestPDFEmptyDocument(t *testing.T) {
	_, err := PDF(&models.Document{}, models.DefaultGeometry(), DefaultStyle())
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = PDF(nil, models.DefaultGeometry(), DefaultStyle())
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestPDFUnknownFont(t *testing.T) {
	style := DefaultStyle()
	style.CellFontFamily = "NoSuchFont"
	_, err := PDF(testDocument(t, 1, 0), models.DefaultGeometry(), style)
	assert.Error(t, err)
}

func TestVerifyPDFMismatch(t *testing.T) {
	data, err := PDF(testDocument(t, 1, 1), models.DefaultGeometry(), testStyle())
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyPDF(data, 3), ErrPageCountMismatch)
	assert.Error(t, VerifyPDF([]byte("not a pdf"), 1))
}

func TestToWindows1252(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ada", "Ada"},
		{"Zoë", "Zo\xeb"},
		{"€5", "\x805"},
		{"李", "?"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, toWindows1252(tt.input), tt.input)
	}
}
