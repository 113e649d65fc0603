package models_test

import (
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestFinanceStatusDefaultsToPending() {
	user := suite.createTestUser("user-finance-1", "finance1@example.com")

	finance := models.Finance{
		Title:       "  Conta de luz ",
		Value:       decimal.NewFromInt(180),
		Type:        models.FinanceTypeExpense,
		CreatedByID: user.ID,
	}
	err := models.DB.Create(&finance).Error
	suite.Require().Nil(err)

	suite.Assert().Equal(models.FinanceStatusPending, finance.Status)
	suite.Assert().Equal("Conta de luz", finance.Title)
}

func (suite *TestSuiteStandard) TestFinancePendingClearsPaymentDate() {
	user := suite.createTestUser("user-finance-2", "finance2@example.com")

	paymentDate := types.Today()
	finance := models.Finance{
		Title:       "Mercado",
		Value:       decimal.NewFromInt(320),
		Type:        models.FinanceTypeExpense,
		Status:      models.FinanceStatusPending,
		PaymentDate: &paymentDate,
		CreatedByID: user.ID,
	}
	err := models.DB.Create(&finance).Error
	suite.Require().Nil(err)

	suite.Assert().Nil(finance.PaymentDate)
}

func (suite *TestSuiteStandard) TestFinanceOverduePromotion() {
	user := suite.createTestUser("user-finance-3", "finance3@example.com")

	dueDate := types.Today().AddDays(-3)
	finance := models.Finance{
		Title:       "Internet",
		Value:       decimal.NewFromInt(99),
		Type:        models.FinanceTypeExpense,
		Status:      models.FinanceStatusPending,
		DueDate:     &dueDate,
		CreatedByID: user.ID,
	}
	err := models.DB.Create(&finance).Error
	suite.Require().Nil(err)

	suite.Assert().Equal(models.FinanceStatusOverdue, finance.Status)
}

func (suite *TestSuiteStandard) TestFinancePaidIsNotPromoted() {
	user := suite.createTestUser("user-finance-4", "finance4@example.com")

	dueDate := types.Today().AddDays(-3)
	paymentDate := types.Today().AddDays(-2)
	finance := models.Finance{
		Title:       "Internet",
		Value:       decimal.NewFromInt(99),
		Type:        models.FinanceTypeExpense,
		Status:      models.FinanceStatusPaid,
		DueDate:     &dueDate,
		PaymentDate: &paymentDate,
		CreatedByID: user.ID,
	}
	err := models.DB.Create(&finance).Error
	suite.Require().Nil(err)

	suite.Assert().Equal(models.FinanceStatusPaid, finance.Status)
}

func (suite *TestSuiteStandard) TestFinanceRecordDate() {
	dueDate := types.NewDate(2026, 9, 10)
	paymentDate := types.NewDate(2026, 9, 8)

	tests := []struct {
		name    string
		finance models.Finance
		want    types.Date
		wantOK  bool
	}{
		{"payment date wins", models.Finance{DueDate: &dueDate, PaymentDate: &paymentDate}, paymentDate, true},
		{"due date fallback", models.Finance{DueDate: &dueDate}, dueDate, true},
		{"no dates", models.Finance{}, types.Date{}, false},
	}

	for _, tt := range tests {
		date, ok := tt.finance.RecordDate()
		suite.Assert().Equal(tt.wantOK, ok, tt.name)
		suite.Assert().Equal(tt.want, date, tt.name)
	}
}
