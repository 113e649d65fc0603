package models_test

import (
	"github.com/cofrinho/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestGoal(user models.User, target int64) models.Goal {
	goal := models.Goal{
		Title:       "Reserva",
		TargetValue: decimal.NewFromInt(target),
		UserID:      user.ID,
	}
	err := models.DB.Create(&goal).Error
	suite.Require().Nil(err)

	return goal
}

func (suite *TestSuiteStandard) TestGoalTargetMustBePositive() {
	user := suite.createTestUser("user-goal-1", "goal1@example.com")

	goal := models.Goal{
		Title:       "Meta inválida",
		TargetValue: decimal.Zero,
		UserID:      user.ID,
	}
	err := models.DB.Create(&goal).Error
	suite.Assert().ErrorIs(err, models.ErrGoalTargetNotPositive)
}

func (suite *TestSuiteStandard) TestGoalRecordDirectionValidated() {
	user := suite.createTestUser("user-goal-2", "goal2@example.com")
	goal := suite.createTestGoal(user, 1000)

	record := models.GoalRecord{
		GoalID:    goal.ID,
		Value:     decimal.NewFromInt(100),
		Direction: "Transferir",
	}
	err := models.DB.Create(&record).Error
	suite.Assert().ErrorIs(err, models.ErrGoalRecordDirectionInvalid)
}

func (suite *TestSuiteStandard) TestGoalRecordRequiresGoal() {
	record := models.GoalRecord{
		GoalID:    4000,
		Value:     decimal.NewFromInt(100),
		Direction: models.GoalRecordAdd,
	}
	err := models.DB.Create(&record).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestGoalRecalculateCurrentValue() {
	user := suite.createTestUser("user-goal-3", "goal3@example.com")
	goal := suite.createTestGoal(user, 1000)

	records := []models.GoalRecord{
		{GoalID: goal.ID, Value: decimal.NewFromInt(600), Direction: models.GoalRecordAdd},
		{GoalID: goal.ID, Value: decimal.NewFromInt(500), Direction: models.GoalRecordAdd},
		{GoalID: goal.ID, Value: decimal.NewFromInt(200), Direction: models.GoalRecordWithdraw},
	}
	for i := range records {
		err := models.DB.Create(&records[i]).Error
		suite.Require().Nil(err)
	}

	err := goal.RecalculateCurrentValue(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(goal.CurrentValue.Equal(decimal.NewFromInt(900)), "current value is %s", goal.CurrentValue)
	suite.Assert().False(goal.Achieved())

	// The value is persisted, not only set on the struct
	var reloaded models.Goal
	err = models.DB.First(&reloaded, goal.ID).Error
	suite.Require().Nil(err)
	suite.Assert().True(reloaded.CurrentValue.Equal(decimal.NewFromInt(900)))
}

func (suite *TestSuiteStandard) TestGoalAchieved() {
	tests := []struct {
		name     string
		current  int64
		target   int64
		achieved bool
	}{
		{"below target", 900, 1000, false},
		{"exactly at target", 1000, 1000, true},
		{"above target", 1100, 1000, true},
	}

	for _, tt := range tests {
		goal := models.Goal{
			CurrentValue: decimal.NewFromInt(tt.current),
			TargetValue:  decimal.NewFromInt(tt.target),
		}
		suite.Assert().Equal(tt.achieved, goal.Achieved(), tt.name)
	}
}

func (suite *TestSuiteStandard) TestGoalRecordSignedValue() {
	add := models.GoalRecord{Value: decimal.NewFromInt(100), Direction: models.GoalRecordAdd}
	withdraw := models.GoalRecord{Value: decimal.NewFromInt(100), Direction: models.GoalRecordWithdraw}

	suite.Assert().True(add.SignedValue().Equal(decimal.NewFromInt(100)))
	suite.Assert().True(withdraw.SignedValue().Equal(decimal.NewFromInt(-100)))
}
