package v1_test

import (
	"net/http"

	v1 "github.com/worklog-zero/backend/internal/controllers/v1"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/timesheet"
	"github.com/worklog-zero/backend/internal/types"
	"github.com/worklog-zero/backend/test"
)

func (suite *TestSuiteStandard) TestWorkdaysRequiresToken() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/calendar/workdays?year=2024&month=5", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestWorkdays() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/calendar/workdays?year=2024&month=5", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CalendarResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("2024-05", response.Data.Month)
	suite.Assert().Equal(31, response.Data.TotalDays)
	suite.Assert().Equal(22, response.Data.Workdays)
	suite.Assert().InDelta(176.0, response.Data.ExpectedHours, 0.001)
	suite.Assert().Len(response.Data.Days, 31)
}

func (suite *TestSuiteStandard) TestWorkdaysInvalidMonth() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	for _, url := range []string{
		"/v1/calendar/workdays",
		"/v1/calendar/workdays?year=2024",
		"/v1/calendar/workdays?year=2024&month=13",
		"/v1/calendar/workdays?year=2024&month=0",
	} {
		recorder := test.Request(suite.T(), http.MethodGet, url, nil, auth)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestCompletion() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	_, err := timesheet.Reconcile("astrid", types.NewMonth(2024, 5), []timesheet.Entry{
		{Date: "2024-05-02", HoursWorked: 8},
		{Date: "2024-05-03", HoursWorked: 8},
	}, false)
	suite.Require().NoError(err)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/calendar/completion?year=2024&month=5", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompletionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(22, response.Data.TotalWorkdays)
	suite.Assert().Equal(2, response.Data.FilledWorkdays)
	suite.Assert().False(response.Data.IsComplete)
	suite.Assert().Len(response.Data.MissingDates, 20)
	suite.Assert().NotContains(response.Data.MissingDates, "2024-05-02")
}

func (suite *TestSuiteStandard) TestCompletionCountsZeroHourDays() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	// A recorded day counts as filled even with zero hours and no category
	_, err := timesheet.Reconcile("astrid", types.NewMonth(2024, 5), []timesheet.Entry{
		{Date: "2024-05-02", HoursWorked: 0, Note: "strike day"},
	}, false)
	suite.Require().NoError(err)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/calendar/completion?year=2024&month=5", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompletionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(1, response.Data.FilledWorkdays)
	suite.Assert().NotContains(response.Data.MissingDates, "2024-05-02")
}

func (suite *TestSuiteStandard) TestCompletionForOtherUser() {
	_, err := timesheet.Reconcile("finn", types.NewMonth(2024, 5), []timesheet.Entry{
		{Date: "2024-05-02", HoursWorked: 8},
	}, false)
	suite.Require().NoError(err)

	employee := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/calendar/completion?year=2024&month=5&user=finn", nil, employee)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	payroll := test.BearerFor(suite.T(), "paula", identity.RolePayroll)
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/calendar/completion?year=2024&month=5&user=finn", nil, payroll)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompletionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(1, response.Data.FilledWorkdays)
}

func (suite *TestSuiteStandard) TestCompletionOnlyOwnRecords() {
	_, err := timesheet.Reconcile("finn", types.NewMonth(2024, 5), []timesheet.Entry{
		{Date: "2024-05-02", HoursWorked: 8},
	}, false)
	suite.Require().NoError(err)

	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/calendar/completion?year=2024&month=5", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompletionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(0, response.Data.FilledWorkdays)
}
