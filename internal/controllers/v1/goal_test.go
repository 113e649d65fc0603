package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cofrinho/backend/internal/controllers/v1"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
	"github.com/cofrinho/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsGoals() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	deadline := types.NewDate(2027, 1, 31)
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Title:       "Viagem de férias",
		TargetValue: decimal.NewFromInt(5000),
		Deadline:    &deadline,
	})

	suite.Assert().Equal("Viagem de férias", goal.Data.Title)
	suite.Assert().True(goal.Data.CurrentValue.IsZero())
	suite.Assert().False(goal.Data.Achieved)
	suite.Assert().Empty(goal.Data.Records)
}

func (suite *TestSuiteStandard) TestCreateGoalTargetNotPositive() {
	tests := []struct {
		name   string
		target decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-100)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/goals",
				[]v1.GoalEditable{{Title: "Meta inválida", TargetValue: tt.target}})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Contains(t, *response.Data[0].Error, "larger than zero")
		})
	}
}

func (suite *TestSuiteStandard) TestCreateGoalRecord() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Notebook", TargetValue: decimal.NewFromInt(1000)})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Records, v1.GoalRecordEditable{
		Value:     decimal.NewFromInt(250),
		Direction: models.GoalRecordAdd,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.CurrentValue.Equal(decimal.NewFromInt(250)), "current value is %s", response.Data.CurrentValue)
	suite.Assert().Len(response.Data.Records, 1)

	// An empty title defaults to a description of the movement
	suite.Assert().Equal("Adicionar em Notebook", response.Data.Records[0].Title)
}

func (suite *TestSuiteStandard) TestGoalRecordLedgerIsAuthoritative() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Notebook", TargetValue: decimal.NewFromInt(1000)})

	steps := []struct {
		direction models.GoalRecordDirection
		value     int64
		want      int64
	}{
		{models.GoalRecordAdd, 600, 600},
		{models.GoalRecordAdd, 500, 1100},
		{models.GoalRecordWithdraw, 200, 900},
	}

	for _, step := range steps {
		recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Records, v1.GoalRecordEditable{
			Value:     decimal.NewFromInt(step.value),
			Direction: step.direction,
		})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

		var response v1.GoalResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().True(response.Data.CurrentValue.Equal(decimal.NewFromInt(step.want)), "current value is %s, want %d", response.Data.CurrentValue, step.want)
	}

	// 900 of 1000 is not achieved
	recorder := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.Achieved)
}

func (suite *TestSuiteStandard) TestGoalAchieved() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Reserva", TargetValue: decimal.NewFromInt(500)})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Records, v1.GoalRecordEditable{
		Value:     decimal.NewFromInt(500),
		Direction: models.GoalRecordAdd,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Achieved)
}

func (suite *TestSuiteStandard) TestCreateGoalRecordInvalidDirection() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Notebook", TargetValue: decimal.NewFromInt(1000)})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Records, v1.GoalRecordEditable{
		Value:     decimal.NewFromInt(250),
		Direction: "Transferir",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateGoalRecordMissingGoal() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals/4000/records", v1.GoalRecordEditable{
		Value:     decimal.NewFromInt(250),
		Direction: models.GoalRecordAdd,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetGoalsFilter() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Title: "Viagem", TargetValue: decimal.NewFromInt(5000)})
	achieved := createTestGoal(suite.T(), v1.GoalEditable{Title: "Bicicleta", TargetValue: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodPost, achieved.Data.Links.Records, v1.GoalRecordEditable{
		Value:     decimal.NewFromInt(100),
		Direction: models.GoalRecordAdd,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	tests := []struct {
		query   string
		wantLen int
	}{
		{"", 2},
		{"achieved=true", 1},
		{"achieved=false", 1},
		{"title=via", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.wantLen)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsArePersonal() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Viagem", TargetValue: decimal.NewFromInt(5000)})

	// Goals are not shared, not even within a family
	recorder := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", map[string]string{
		"X-User-ID":    "00000000-0000-0000-0000-000000000099",
		"X-User-Email": "other@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateGoal() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Viagem", TargetValue: decimal.NewFromInt(5000)})

	recorder := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"targetValue": "7500",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.TargetValue.Equal(decimal.NewFromInt(7500)))
	suite.Assert().Equal("Viagem", response.Data.Title)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Title: "Viagem", TargetValue: decimal.NewFromInt(5000)})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Records, v1.GoalRecordEditable{
		Value:     decimal.NewFromInt(100),
		Direction: models.GoalRecordAdd,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
