package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/layout"
	"github.com/ukaji3/signsheet-go/pkg/signsheet/models"
)

// testDocument paginates n generated attendees plus supplemental walk-in pages.
func testDocument(t *testing.T, n, supplemental int) *models.Document {
	t.Helper()
	set := &models.RecordSet{Columns: []string{models.ColumnFirstName, models.ColumnLastName}}
	for i := 0; i < n; i++ {
		set.Records = append(set.Records, models.Record{
			Line: i + 2,
			Fields: map[string]string{
				models.ColumnFirstName: fmt.Sprintf("Zoë %d", i),
				models.ColumnLastName:  fmt.Sprintf("Ångström %d", i),
			},
		})
	}
	doc, err := layout.Paginate(set, models.DefaultGeometry(), layout.Options{
		Title:             layout.Title("Fall Social", "2026-10-16"),
		SupplementalPages: supplemental,
	})
	require.NoError(t, err)
	return doc
}

func testStyle() Style {
	s := DefaultStyle()
	s.Created = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	return s
}
