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
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsCharts() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/charts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetChartWindows() {
	today := types.Today()

	_ = createTestFinance(suite.T(), v1.FinanceEditable{
		Title:       "Salário",
		Value:       decimal.NewFromInt(2500),
		Type:        models.FinanceTypeIncome,
		Status:      models.FinanceStatusPaid,
		PaymentDate: &today,
	})
	_ = createTestFinance(suite.T(), v1.FinanceEditable{
		Title:       "Mercado",
		Value:       decimal.NewFromInt(320),
		Type:        models.FinanceTypeExpense,
		Status:      models.FinanceStatusPaid,
		PaymentDate: &today,
	})

	tests := []struct {
		view       string
		minBuckets int
		maxBuckets int
	}{
		{"", 28, 31},
		{"1m", 28, 31},
		{"7d", 7, 7},
		{"3m", 3, 3},
		{"6m", 6, 6},
		{"1y", 12, 12},
	}

	for _, tt := range tests {
		suite.T().Run(tt.view, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/charts?view=%s", tt.view), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ChartResponse
			test.DecodeResponse(t, &recorder, &response)
			require.NotNil(t, response.Data)

			assert.GreaterOrEqual(t, len(response.Data.Buckets), tt.minBuckets)
			assert.LessOrEqual(t, len(response.Data.Buckets), tt.maxBuckets)
			assert.Len(t, response.Data.Rows, 2)

			// Both records count in every window since they were paid today
			var income, expense decimal.Decimal
			for _, bucket := range response.Data.Buckets {
				income = income.Add(bucket.Income)
				expense = expense.Add(bucket.Expense)
			}
			assert.True(t, income.Equal(decimal.NewFromInt(2500)), "income is %s", income)
			assert.True(t, expense.Equal(decimal.NewFromInt(320)), "expense is %s", expense)
		})
	}
}

func (suite *TestSuiteStandard) TestGetChartInvalidView() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts?view=2w", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetChartFilterNarrowsRowsOnly() {
	today := types.Today()

	_ = createTestFinance(suite.T(), v1.FinanceEditable{
		Title:       "Salário",
		Value:       decimal.NewFromInt(2500),
		Type:        models.FinanceTypeIncome,
		Status:      models.FinanceStatusPaid,
		PaymentDate: &today,
	})
	_ = createTestFinance(suite.T(), v1.FinanceEditable{
		Title:       "Mercado",
		Value:       decimal.NewFromInt(320),
		Type:        models.FinanceTypeExpense,
		Status:      models.FinanceStatusPaid,
		PaymentDate: &today,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts?view=7d&type=Despesa", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The chart still aggregates all records, only the table narrows
	suite.Assert().Len(response.Data.Rows, 1)

	var income decimal.Decimal
	for _, bucket := range response.Data.Buckets {
		income = income.Add(bucket.Income)
	}
	suite.Assert().True(income.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestGetChartSpendingLimit() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts?view=7d", "")
	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotEmpty(response.Data.Buckets)
	suite.Assert().Nil(response.Data.Buckets[0].Limit)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/spending-limit", v1.SpendingLimitEditable{
		Value: decimal.NewFromInt(1000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts?view=7d", "")
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotEmpty(response.Data.Buckets)
	suite.Require().NotNil(response.Data.Buckets[0].Limit)
	suite.Assert().True(response.Data.Buckets[0].Limit.Equal(decimal.NewFromInt(1000)))
}
