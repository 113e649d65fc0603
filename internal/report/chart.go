package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ViewWindow selects the charting time range, anchored at "today".
type ViewWindow string

const (
	WindowLast7Days    ViewWindow = "7d"
	WindowThisMonth    ViewWindow = "1m"
	WindowLast3Months  ViewWindow = "3m"
	WindowLast6Months  ViewWindow = "6m"
	WindowLast12Months ViewWindow = "1y"
)

var ErrViewWindowInvalid = errors.New("the view window must be one of 7d, 1m, 3m, 6m, 1y")

// daily reports whether the window uses day-level buckets.
func (w ViewWindow) daily() bool {
	return w == WindowLast7Days || w == WindowThisMonth
}

// months returns the number of monthly buckets for month-level windows.
func (w ViewWindow) months() int {
	switch w {
	case WindowLast3Months:
		return 3
	case WindowLast6Months:
		return 6
	default:
		return 12
	}
}

// Valid reports whether the window is one of the known values.
func (w ViewWindow) Valid() bool {
	switch w {
	case WindowLast7Days, WindowThisMonth, WindowLast3Months, WindowLast6Months, WindowLast12Months:
		return true
	}
	return false
}

// Bucket is one time slot on the chart's x axis. Buckets exist for every
// unit of the window even when no record falls into them.
type Bucket struct {
	Key     string           `json:"key" example:"2026-09-01"` // YYYY-MM-DD for daily windows, YYYY-MM for monthly ones
	Label   string           `json:"label" example:"01/09"`    // Short display label
	Income  decimal.Decimal  `json:"income" example:"2500.00"`
	Expense decimal.Decimal  `json:"expense" example:"1320.45"`
	Limit   *decimal.Decimal `json:"limit" example:"1000.00"` // The spending limit at aggregation time, null when unset
}

// Short pt-BR month names for the monthly bucket labels.
var monthLabels = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Aggregate buckets the records into the selected window.
//
// The bucket sequence is generated from the window alone, before any record
// is looked at, so empty windows still yield a complete zero-filled
// sequence in chronological order. Each record counts on its payment date
// if present, else its due date; records with neither date or with a key
// outside the window are dropped and never extend it.
func Aggregate(records []models.Finance, window ViewWindow, limit *decimal.Decimal, today types.Date) ([]Bucket, error) {
	if !window.Valid() {
		return nil, ErrViewWindowInvalid
	}

	buckets := makeBuckets(window, limit, today)

	index := make(map[string]int, len(buckets))
	for i, bucket := range buckets {
		index[bucket.Key] = i
	}

	for _, record := range records {
		date, ok := record.RecordDate()
		if !ok {
			continue
		}

		key := date.String()
		if !window.daily() {
			key = date.Month().String()
		}

		i, ok := index[key]
		if !ok {
			continue
		}

		switch record.Type {
		case models.FinanceTypeIncome:
			buckets[i].Income = buckets[i].Income.Add(record.Value)
		case models.FinanceTypeExpense:
			buckets[i].Expense = buckets[i].Expense.Add(record.Value)
		}
	}

	return buckets, nil
}

// makeBuckets generates the zero-filled bucket sequence for the window.
func makeBuckets(window ViewWindow, limit *decimal.Decimal, today types.Date) []Bucket {
	var buckets []Bucket

	appendDay := func(day types.Date) {
		buckets = append(buckets, Bucket{
			Key:     day.String(),
			Label:   time.Time(day).Format("02/01"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Limit:   limit,
		})
	}

	switch window {
	case WindowLast7Days:
		for day := today.AddDays(-6); !day.After(today); day = day.AddDays(1) {
			appendDay(day)
		}

	case WindowThisMonth:
		month := today.Month()
		first := types.Date(time.Time(month))
		for day := first; day.Month().Equal(month); day = day.AddDays(1) {
			appendDay(day)
		}

	default:
		last := today.Month()
		for month := last.AddDate(0, -(window.months() - 1)); !month.After(last); month = month.AddDate(0, 1) {
			buckets = append(buckets, Bucket{
				Key:     month.String(),
				Label:   fmt.Sprintf("%s/%02d", monthLabels[time.Time(month).Month()-1], time.Time(month).Year()%100),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Limit:   limit,
			})
		}
	}

	return buckets
}
