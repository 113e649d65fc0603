package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/cofrinho/backend/internal/controllers/v1"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/test"
	"github.com/shopspring/decimal"
)

const secondUserID = "00000000-0000-0000-0000-000000000002"

// asSecondUser overrides the identity headers so that the request is made
// by another user than the default test user
func asSecondUser() map[string]string {
	return map[string]string{
		"X-User-ID":    secondUserID,
		"X-User-Email": "second@example.com",
		"X-User-Name":  "Second User",
	}
}

func (suite *TestSuiteStandard) createTestFamily(name string) v1.FamilyResponse {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family", v1.FamilyEditable{Name: name})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.FamilyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestOptionsFamily() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/family", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetFamilyNone() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/family", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateFamily() {
	family := suite.createTestFamily("Silva")

	suite.Assert().Equal("Silva", family.Data.Name)
	suite.Assert().Equal(test.DefaultUserID, family.Data.OwnerID)
	suite.Assert().NotEmpty(family.Data.Code)
	suite.Require().Len(family.Data.Members, 1)
	suite.Assert().Equal(test.DefaultUserID, family.Data.Members[0].ID)
}

func (suite *TestSuiteStandard) TestCreateFamilyTwice() {
	_ = suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family", v1.FamilyEditable{Name: "Souza"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestJoinFamily() {
	family := suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: family.Data.Code}, asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FamilyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Members, 2)

	// The member now sees the family, too
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/family", "", asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestJoinFamilyUnknownCode() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: "does-not-exist"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestJoinFamilyCodeNotSet() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join", v1.FamilyJoinEditable{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestFamilySharesFinances() {
	family := suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: family.Data.Code}, asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	finance := createTestFinance(suite.T(), v1.FinanceEditable{
		Title: "Aluguel",
		Value: decimal.NewFromInt(1800),
		Type:  models.FinanceTypeExpense,
	})

	// Family members see each other's records
	recorder = test.Request(suite.T(), http.MethodGet, finance.Data.Links.Self, "", asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FinanceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Aluguel", response.Data.Title)
	suite.Assert().Equal(test.DefaultUserID, response.Data.CreatedBy)
}

func (suite *TestSuiteStandard) TestLeaveFamilyMember() {
	family := suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: family.Data.Code}, asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/family", "", asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The family itself survives, only the member is gone
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/family", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.FamilyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data.Members, 1)
}

func (suite *TestSuiteStandard) TestLeaveFamilyOwnerDissolves() {
	family := suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: family.Data.Code}, asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/family", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// All members lose the family when the owner leaves
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/family", "", asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestLeaveFamilyNone() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/family", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRemoveFamilyMember() {
	family := suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: family.Data.Code}, asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/family/members/%s", secondUserID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/family", "", asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRemoveFamilyMemberNotOwner() {
	family := suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/family/join",
		v1.FamilyJoinEditable{Code: family.Data.Code}, asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/family/members/%s", test.DefaultUserID), "", asSecondUser())
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestRemoveFamilyMemberSelf() {
	_ = suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/family/members/%s", test.DefaultUserID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRemoveFamilyMemberUnknown() {
	_ = suite.createTestFamily("Silva")

	recorder := test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/family/members/%s", secondUserID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
