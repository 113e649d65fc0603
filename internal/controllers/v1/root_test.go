package v1_test

import (
	"net/http"

	v1 "github.com/cofrinho/backend/internal/controllers/v1"
	"github.com/cofrinho/backend/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/finances", response.Links.Finances)
	suite.Assert().Equal("http://example.com/v1/goals", response.Links.Goals)
	suite.Assert().Equal("http://example.com/v1/spending-limit", response.Links.SpendingLimit)
	suite.Assert().Equal("http://example.com/v1/family", response.Links.Family)
	suite.Assert().Equal("http://example.com/v1/charts", response.Links.Charts)
	suite.Assert().Equal("http://example.com/v1/notifications", response.Links.Notifications)
	suite.Assert().Equal("http://example.com/v1/export", response.Links.Export)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestUserHeaderRequired() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "", map[string]string{
		"X-User-ID": "",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
