package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-zero/backend/internal/models"
)

func (suite *TestSuiteStandard) TestHolidayCategoryNameUnique() {
	_ = suite.createTestCategory(models.HolidayCategory{Name: "Semester"})

	err := models.DB.Create(&models.HolidayCategory{Name: "Semester"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestHolidayCategoryTrimsWhitespace() {
	category := suite.createTestCategory(models.HolidayCategory{Name: "  Semester ", Description: " Vacation  "})

	assert.Equal(suite.T(), "Semester", category.Name)
	assert.Equal(suite.T(), "Vacation", category.Description)
}

func (suite *TestSuiteStandard) TestSeedHolidayCategories() {
	require.NoError(suite.T(), models.SeedHolidayCategories(models.DB))

	var count int64
	require.NoError(suite.T(), models.DB.Model(&models.HolidayCategory{}).Count(&count).Error)
	assert.EqualValues(suite.T(), 9, count)

	// Seeding again must not duplicate the reference data
	require.NoError(suite.T(), models.SeedHolidayCategories(models.DB))
	require.NoError(suite.T(), models.DB.Model(&models.HolidayCategory{}).Count(&count).Error)
	assert.EqualValues(suite.T(), 9, count)
}
