package v1_test

import (
	"net/http"
	"strconv"

	v1 "github.com/worklog-zero/backend/internal/controllers/v1"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/status"
	"github.com/worklog-zero/backend/internal/timesheet"
	"github.com/worklog-zero/backend/test"
)

func (suite *TestSuiteStandard) TestSubmitEntries() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/entries", v1.EntriesEditable{
		Entries: []timesheet.Entry{
			{Date: "2024-05-02", HoursWorked: 8},
			{Date: "2024-05-03", HoursWorked: 6.5, Note: "left early"},
		},
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("astrid", response.Data.UserName)
	suite.Assert().Equal(status.Draft, response.Data.Status)
	suite.Assert().InDelta(14.5, response.Data.TotalHours, 0.001)
	suite.Assert().Len(response.Data.Records, 2)
}

func (suite *TestSuiteStandard) TestSubmitEntriesAndSubmit() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/entries", v1.EntriesEditable{
		Entries: []timesheet.Entry{{Date: "2024-05-02", HoursWorked: 8}},
		Submit:  true,
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(status.Submitted, response.Data.Status)
	suite.Assert().NotNil(response.Data.SubmissionDate)
}

func (suite *TestSuiteStandard) TestSubmitEntriesValidation() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"invalid month", "/v1/months/2024/13/entries", v1.EntriesEditable{}, http.StatusBadRequest},
		{"empty body", "/v1/months/2024/5/entries", "", http.StatusBadRequest},
		{"broken json", "/v1/months/2024/5/entries", `{ "entries": `, http.StatusBadRequest},
		{"malformed date", "/v1/months/2024/5/entries", v1.EntriesEditable{
			Entries: []timesheet.Entry{{Date: "02.05.2024", HoursWorked: 8}},
		}, http.StatusBadRequest},
		{"date outside month", "/v1/months/2024/5/entries", v1.EntriesEditable{
			Entries: []timesheet.Entry{{Date: "2024-06-01", HoursWorked: 8}},
		}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, tt.url, tt.body, auth)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

		suite.Assert().NotEmpty(test.DecodeError(suite.T(), recorder.Body.Bytes()), tt.name)
	}
}

func (suite *TestSuiteStandard) TestSubmitDocument() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	body, headers := suite.multipartBody(
		map[string]string{"totalHoursReported": "176"},
		"timesheet.pdf", "application/pdf", []byte("%PDF-1.4 content"))

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/document", body, merge(headers, auth))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data.ReportedTotalHours)
	suite.Assert().InDelta(176.0, *response.Data.ReportedTotalHours, 0.001)
	suite.Assert().Len(response.Data.Records, 1)
}

func (suite *TestSuiteStandard) TestSubmitDocumentMismatch() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	body, headers := suite.multipartBody(
		map[string]string{"totalHoursReported": strconv.FormatFloat(160, 'f', -1, 64)},
		"timesheet.pdf", "application/pdf", []byte("content"))

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/document", body, merge(headers, auth))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "expected 176.00")
}

func (suite *TestSuiteStandard) TestSubmitDocumentValidation() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	// Wrong file type
	body, headers := suite.multipartBody(map[string]string{"totalHoursReported": "176"}, "timesheet.docx", "application/msword", []byte("content"))
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/document", body, merge(headers, auth))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Missing file
	body, headers = suite.multipartBody(map[string]string{"totalHoursReported": "176"}, "", "", nil)
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/document", body, merge(headers, auth))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// Unparseable hours
	body, headers = suite.multipartBody(map[string]string{"totalHoursReported": "many"}, "timesheet.pdf", "application/pdf", []byte("content"))
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/months/2024/5/document", body, merge(headers, auth))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
