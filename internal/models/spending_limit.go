package models

import (
	"github.com/shopspring/decimal"
)

// SpendingLimit is the configured monthly spending limit of a user.
//
// A user without a row has no limit configured. A stored value of zero is a
// real limit of zero, not "unset", the distinction matters for the charts.
type SpendingLimit struct {
	Model
	Value  decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"1000.00"`
	UserID string          `json:"-" gorm:"uniqueIndex"`
	User   User            `json:"-"`
}
