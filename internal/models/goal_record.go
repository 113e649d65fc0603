package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalRecordDirection says whether a record adds money to a goal or
// withdraws from it.
type GoalRecordDirection string

const (
	GoalRecordAdd      GoalRecordDirection = "Adicionar"
	GoalRecordWithdraw GoalRecordDirection = "Retirar"
)

// GoalRecord is an immutable ledger entry for a Goal. Records are never
// edited or deleted individually, only the whole goal can be deleted.
type GoalRecord struct {
	Model
	GoalID    uint                `json:"goalId" example:"7"`
	Goal      Goal                `json:"-"`
	Title     string              `json:"title" example:"Depósito mensal"`
	Value     decimal.Decimal     `json:"value" gorm:"type:DECIMAL(20,8)" example:"250.00"`
	Direction GoalRecordDirection `json:"direction" example:"Adicionar"`
}

var ErrGoalRecordDirectionInvalid = errors.New("the goal record direction must be either \"Adicionar\" or \"Retirar\"")

func (r *GoalRecord) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*GoalRecord)
	return tx.First(&Goal{}, toSave.GoalID).Error
}

func (r *GoalRecord) BeforeSave(_ *gorm.DB) error {
	r.Title = strings.TrimSpace(r.Title)

	if r.Direction != GoalRecordAdd && r.Direction != GoalRecordWithdraw {
		return ErrGoalRecordDirectionInvalid
	}

	return nil
}

// SignedValue returns the value with the sign implied by the direction.
func (r GoalRecord) SignedValue() decimal.Decimal {
	if r.Direction == GoalRecordWithdraw {
		return r.Value.Neg()
	}

	return r.Value
}
