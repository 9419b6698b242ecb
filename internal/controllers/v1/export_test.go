package v1_test

import (
	"net/http"

	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/types"
	"github.com/worklog-zero/backend/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportTimesheets() {
	suite.createMonth("astrid", types.NewMonth(2024, 5), true)

	admin := test.BearerFor(suite.T(), "root", identity.RoleAdmin)
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export/timesheets/2024/5", nil, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="timesheets_2024-05.xlsx"`, recorder.Header().Get("Content-Disposition"))

	workbook, err := excelize.OpenReader(recorder.Body)
	suite.Require().NoError(err)
	defer workbook.Close()

	user, err := workbook.GetCellValue("Overview", "A2")
	suite.Require().NoError(err)
	suite.Assert().Equal("astrid", user)
}

func (suite *TestSuiteStandard) TestExportTimesheetsRequiresAdmin() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export/timesheets/2024/5", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestExportTimesheetsInvalidMonth() {
	admin := test.BearerFor(suite.T(), "root", identity.RoleAdmin)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export/timesheets/2024/13", nil, admin)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
