package report

import (
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
	"github.com/shopspring/decimal"
)

// View is the assembled page state: the filtered rows for the table and
// the bucket sequence for the chart. It is a pure function of its inputs,
// nothing here holds state.
type View struct {
	Rows    []models.Finance `json:"rows"`
	Buckets []Bucket         `json:"buckets"`
}

// Assemble composes filter and aggregation into the structures the
// presentation layer renders. The chart always reflects the full record
// list; only the table rows are narrowed by the criteria.
func Assemble(records []models.Finance, criteria Criteria, window ViewWindow, limit *decimal.Decimal, today types.Date) (View, error) {
	buckets, err := Aggregate(records, window, limit, today)
	if err != nil {
		return View{}, err
	}

	return View{
		Rows:    Filter(records, criteria),
		Buckets: buckets,
	}, nil
}
