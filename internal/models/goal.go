package models

import (
	"errors"
	"strings"

	"github.com/cofrinho/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal with a ledger of records adjusting its
// accumulated value.
type Goal struct {
	Model
	Title        string          `json:"title" example:"Viagem de férias"`
	TargetValue  decimal.Decimal `json:"targetValue" gorm:"type:DECIMAL(20,8)" example:"5000.00"`
	CurrentValue decimal.Decimal `json:"currentValue" gorm:"type:DECIMAL(20,8)" example:"1250.00"`
	Deadline     *types.Date     `json:"deadline" example:"2027-01-31"`
	UserID       string          `json:"-"`
	User         User            `json:"-"`
	Records      []GoalRecord    `json:"records"`
}

var ErrGoalTargetNotPositive = errors.New("goal target values must be larger than zero")

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetValue) {
		return ErrGoalTargetNotPositive
	}

	return nil
}

// Achieved reports whether the goal has reached its target.
func (g Goal) Achieved() bool {
	return g.CurrentValue.GreaterThanOrEqual(g.TargetValue)
}

// RecalculateCurrentValue sets the current value to the signed sum of all
// goal records. The ledger is authoritative, not the increments applied
// when single records were added.
func (g *Goal) RecalculateCurrentValue(tx *gorm.DB) error {
	var records []GoalRecord
	err := tx.Where(&GoalRecord{GoalID: g.ID}).Find(&records).Error
	if err != nil {
		return err
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.SignedValue())
	}

	g.CurrentValue = total
	return tx.Model(g).Update("current_value", total).Error
}
