// Package report computes the derived views of the finance data: filtered
// record lists and the gap-free chart buckets the dashboard renders.
package report

import (
	"strings"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
)

// Criteria is the set of optional constraints applied to a record list.
// Empty string and nil fields always pass, all active fields are combined
// with a logical AND.
type Criteria struct {
	Title       string               // case-insensitive substring match on the title
	Category    string               // case-insensitive substring match on the category
	Type        models.FinanceType   // exact match
	Status      models.FinanceStatus // exact match
	DueDate     *types.Date          // calendar-date match on the due date
	PaymentDate *types.Date          // calendar-date match on the payment date
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c.Title == "" && c.Category == "" && c.Type == "" && c.Status == "" &&
		c.DueDate == nil && c.PaymentDate == nil
}

// Matches reports whether a single record passes all active criteria.
func (c Criteria) Matches(f models.Finance) bool {
	if c.Title != "" && !strings.Contains(strings.ToLower(f.Title), strings.ToLower(c.Title)) {
		return false
	}

	if c.Category != "" && !strings.Contains(strings.ToLower(f.Category), strings.ToLower(c.Category)) {
		return false
	}

	if c.Type != "" && f.Type != c.Type {
		return false
	}

	if c.Status != "" && f.Status != c.Status {
		return false
	}

	// A record without the corresponding date fails a present date criterion
	if c.DueDate != nil && (f.DueDate == nil || !f.DueDate.Equal(*c.DueDate)) {
		return false
	}

	if c.PaymentDate != nil && (f.PaymentDate == nil || !f.PaymentDate.Equal(*c.PaymentDate)) {
		return false
	}

	return true
}

// Filter returns the records passing the criteria, preserving their
// relative order. Empty criteria return the input unchanged.
func Filter(records []models.Finance, criteria Criteria) []models.Finance {
	if criteria.IsZero() {
		return records
	}

	filtered := make([]models.Finance, 0, len(records))
	for _, record := range records {
		if criteria.Matches(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
