package models

import (
	"strings"

	"github.com/cofrinho/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinanceType is the direction of a finance record.
//
// The values are the Portuguese display strings the product started with.
// They are stored verbatim, renaming them would be a data migration.
type FinanceType string

const (
	FinanceTypeIncome  FinanceType = "Receita"
	FinanceTypeExpense FinanceType = "Despesa"
)

// FinanceStatus is the payment state of a finance record.
type FinanceStatus string

const (
	FinanceStatusPending FinanceStatus = "Pendente"
	FinanceStatusPaid    FinanceStatus = "Pago"
	FinanceStatusOverdue FinanceStatus = "Atrasada"
)

// Finance represents a single income or expense record.
type Finance struct {
	Model
	Title       string          `json:"title" example:"Conta de luz"`
	Value       decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"132.90"`
	Type        FinanceType     `json:"type" example:"Despesa"`
	Status      FinanceStatus   `json:"status" example:"Pendente"`
	Category    string          `json:"category" example:"Moradia"`
	DueDate     *types.Date     `json:"dueDate" example:"2026-09-10"`
	PaymentDate *types.Date     `json:"paymentDate" example:"2026-09-08"`
	CreatedByID string          `json:"createdBy" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"`
	CreatedBy   User            `json:"-"`
}

// BeforeSave keeps status and payment date consistent.
//
// A pending record cannot carry a payment date, and an unpaid record
// whose due date has passed becomes overdue.
func (f *Finance) BeforeSave(_ *gorm.DB) error {
	f.Title = strings.TrimSpace(f.Title)
	f.Category = strings.TrimSpace(f.Category)

	if f.Status == "" {
		f.Status = FinanceStatusPending
	}

	if f.Status == FinanceStatusPending {
		f.PaymentDate = nil
	}

	if f.DueDate != nil &&
		f.DueDate.Before(types.Today()) &&
		f.Status != FinanceStatusPaid && f.Status != FinanceStatusOverdue {
		f.Status = FinanceStatusOverdue
	}

	return nil
}

// RecordDate returns the date the record counts on for aggregation and
// export: the payment date if present, else the due date. The second return
// value is false when the record has neither and is to be excluded.
func (f Finance) RecordDate() (types.Date, bool) {
	if f.PaymentDate != nil {
		return *f.PaymentDate, true
	}
	if f.DueDate != nil {
		return *f.DueDate, true
	}
	return types.Date{}, false
}
