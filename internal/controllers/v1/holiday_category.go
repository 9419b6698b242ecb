package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/identity"
	"github.com/worklog-zero/backend/internal/models"
)

func RegisterHolidayCategoryRoutes(r *gin.RouterGroup) {
	admin := identity.RequireRole(identity.RoleAdmin)

	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetHolidayCategories)
		r.POST("", admin, CreateHolidayCategory)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetHolidayCategory)
		r.PATCH("/:id", admin, UpdateHolidayCategory)
		r.DELETE("/:id", admin, DeleteHolidayCategory)
	}
}

// GetHolidayCategories returns all holiday categories
//
//	@Summary		List holiday categories
//	@Description	Returns all holiday categories a day record can reference
//	@Tags			HolidayCategories
//	@Produce		json
//	@Success		200	{object}	HolidayCategoryListResponse
//	@Failure		500	{object}	HolidayCategoryListResponse
//	@Router			/v1/holiday-categories [get]
func GetHolidayCategories(c *gin.Context) {
	var categories []models.HolidayCategory
	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HolidayCategoryListResponse{Data: categories})
}

// GetHolidayCategory returns a single holiday category
//
//	@Summary		Get holiday category
//	@Tags			HolidayCategories
//	@Produce		json
//	@Success		200	{object}	HolidayCategoryResponse
//	@Failure		400	{object}	HolidayCategoryResponse
//	@Failure		404	{object}	HolidayCategoryResponse
//	@Param			id	path		string	true	"ID of the holiday category"
//	@Router			/v1/holiday-categories/{id} [get]
func GetHolidayCategory(c *gin.Context) {
	categoryID, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HolidayCategoryResponse{Error: &s})
		return
	}

	var category models.HolidayCategory
	err = models.DB.First(&category, categoryID).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HolidayCategoryResponse{Data: &category})
}

// CreateHolidayCategory creates a holiday category
//
//	@Summary		Create holiday category
//	@Tags			HolidayCategories
//	@Accept			json
//	@Produce		json
//	@Success		201		{object}	HolidayCategoryResponse
//	@Failure		400		{object}	HolidayCategoryResponse
//	@Param			body	body		HolidayCategoryEditable	true	"Holiday category"
//	@Router			/v1/holiday-categories [post]
func CreateHolidayCategory(c *gin.Context) {
	var editable HolidayCategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryResponse{Error: &s})
		return
	}

	category := editable.model()
	err = models.DB.Create(&category).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, HolidayCategoryResponse{Data: &category})
}

// UpdateHolidayCategory updates a holiday category
//
//	@Summary		Update holiday category
//	@Tags			HolidayCategories
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	HolidayCategoryResponse
//	@Failure		400		{object}	HolidayCategoryResponse
//	@Failure		404		{object}	HolidayCategoryResponse
//	@Param			id		path		string					true	"ID of the holiday category"
//	@Param			body	body		HolidayCategoryEditable	true	"Holiday category"
//	@Router			/v1/holiday-categories/{id} [patch]
func UpdateHolidayCategory(c *gin.Context) {
	categoryID, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HolidayCategoryResponse{Error: &s})
		return
	}

	var category models.HolidayCategory
	err = models.DB.First(&category, categoryID).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryResponse{Error: &s})
		return
	}

	var editable HolidayCategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryResponse{Error: &s})
		return
	}

	err = models.DB.Model(&category).Updates(editable.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(httpStatus(err), HolidayCategoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HolidayCategoryResponse{Data: &category})
}

// DeleteHolidayCategory deletes a holiday category
//
//	@Summary		Delete holiday category
//	@Tags			HolidayCategories
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID of the holiday category"
//	@Router			/v1/holiday-categories/{id} [delete]
func DeleteHolidayCategory(c *gin.Context) {
	categoryID, err := bindID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var category models.HolidayCategory
	err = models.DB.First(&category, categoryID).Error
	if err != nil {
		c.JSON(httpStatus(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(httpStatus(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
