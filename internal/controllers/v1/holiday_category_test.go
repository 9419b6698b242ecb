package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/worklog-zero/backend/internal/controllers/v1"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/models"
	"github.com/worklog-zero/backend/test"
)

func (suite *TestSuiteStandard) createTestHolidayCategory(editable v1.HolidayCategoryEditable) v1.HolidayCategoryResponse {
	auth := test.BearerFor(suite.T(), "root", identity.RoleAdmin)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/holiday-categories", editable, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.HolidayCategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestGetHolidayCategories() {
	suite.Require().NoError(models.SeedHolidayCategories(models.DB))

	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/holiday-categories", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.HolidayCategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotEmpty(response.Data)

	names := make([]string, 0, len(response.Data))
	for _, category := range response.Data {
		names = append(names, category.Name)
	}
	suite.Assert().Contains(names, "Semester")
	suite.Assert().Contains(names, "Sjukledighet")
}

func (suite *TestSuiteStandard) TestCreateHolidayCategory() {
	response := suite.createTestHolidayCategory(v1.HolidayCategoryEditable{
		Name:        "Parental Leave",
		Description: "Paid leave for a new child",
	})

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Parental Leave", response.Data.Name)
	suite.Assert().False(response.Data.GovernmentHoliday)
}

func (suite *TestSuiteStandard) TestCreateHolidayCategoryRequiresAdmin() {
	auth := test.BearerFor(suite.T(), "astrid", identity.RoleEmployee)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/holiday-categories", v1.HolidayCategoryEditable{Name: "Nope"}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestCreateHolidayCategoryDuplicateName() {
	suite.createTestHolidayCategory(v1.HolidayCategoryEditable{Name: "Vacation"})

	auth := test.BearerFor(suite.T(), "root", identity.RoleAdmin)
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/holiday-categories", v1.HolidayCategoryEditable{Name: "Vacation"}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateHolidayCategoryInvalidBody() {
	auth := test.BearerFor(suite.T(), "root", identity.RoleAdmin)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/holiday-categories", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/holiday-categories", v1.HolidayCategoryEditable{Description: "nameless"}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateHolidayCategory() {
	response := suite.createTestHolidayCategory(v1.HolidayCategoryEditable{Name: "Vacatoin"})

	auth := test.BearerFor(suite.T(), "root", identity.RoleAdmin)
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/holiday-categories/%s", response.Data.ID), v1.HolidayCategoryEditable{
		Name:              "Vacation",
		GovernmentHoliday: true,
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.HolidayCategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Vacation", updated.Data.Name)
	suite.Assert().True(updated.Data.GovernmentHoliday)
}

func (suite *TestSuiteStandard) TestDeleteHolidayCategory() {
	response := suite.createTestHolidayCategory(v1.HolidayCategoryEditable{Name: "Obsolete"})
	auth := test.BearerFor(suite.T(), "root", identity.RoleAdmin)
	url := fmt.Sprintf("/v1/holiday-categories/%s", response.Data.ID)

	recorder := test.Request(suite.T(), http.MethodDelete, url, nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, url, nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestHolidayCategoryNotFound() {
	auth := test.BearerFor(suite.T(), "root", identity.RoleAdmin)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/holiday-categories/e6fe1b1e-5b33-4f0c-8d7f-67f800b0a0d1", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/holiday-categories/definitely-not-a-uuid", nil, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
