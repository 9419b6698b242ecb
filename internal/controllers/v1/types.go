package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/worklog-zero/backend/internal/httputil"
	"github.com/worklog-zero/backend/internal/types"
)

// URIID carries the resource id path parameter. gin cannot bind URI
// parameters into uuid.UUID, so the value is bound as a string and parsed
// afterwards.
type URIID struct {
	ID string `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// bindID binds and parses the id path parameter.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}

	return httputil.UUIDFromString(uri.ID)
}

type URIYearMonth struct {
	Year  int `uri:"year" binding:"required" example:"2024"`
	Month int `uri:"month" binding:"required,min=1,max=12" example:"5"`
}

// month resolves the path parameters into a Month value.
func (u URIYearMonth) month() types.Month {
	return types.NewMonth(u.Year, time.Month(u.Month))
}

type QueryYearMonth struct {
	Year  int `form:"year" binding:"required" example:"2024"`
	Month int `form:"month" binding:"required,min=1,max=12" example:"5"`
}

func (q QueryYearMonth) month() types.Month {
	return types.NewMonth(q.Year, time.Month(q.Month))
}

// bindMonthURI binds and validates the year/month path parameters.
func bindMonthURI(c *gin.Context) (types.Month, bool) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httpStatus(errMonthParameter), httpError{Error: errMonthParameter.Error()})
		return types.Month{}, false
	}

	return uri.month(), true
}
