package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
)

func RegisterSpendingLimitRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSpendingLimit)
	r.GET("", GetSpendingLimit)
	r.POST("", SetSpendingLimit)
	r.DELETE("", DeleteSpendingLimit)
}

type SpendingLimitEditable struct {
	Value decimal.Decimal `json:"value" example:"1000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The monthly spending limit. Zero is a real limit of zero.
}

type SpendingLimitLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/spending-limit"` // The spending limit itself
}

type SpendingLimit struct {
	models.Model
	SpendingLimitEditable
	Links SpendingLimitLinks `json:"links"`
}

// newSpendingLimit returns the API v1 representation of the resource
func newSpendingLimit(c *gin.Context, model models.SpendingLimit) SpendingLimit {
	url := c.GetString(string(models.DBContextURL))

	return SpendingLimit{
		Model: model.Model,
		SpendingLimitEditable: SpendingLimitEditable{
			Value: model.Value,
		},
		Links: SpendingLimitLinks{
			Self: fmt.Sprintf("%s/v1/spending-limit", url),
		},
	}
}

type SpendingLimitResponse struct {
	Error *string        `json:"error" example:"there is no spending limit matching your query"` // The error, if any occurred
	Data  *SpendingLimit `json:"data"`                                                           // The resource. Null when no limit is configured.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SpendingLimit
// @Success		204
// @Router			/v1/spending-limit [options]
func OptionsSpendingLimit(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get spending limit
// @Description	Returns the user's spending limit. The data is null when no limit is configured.
// @Tags			SpendingLimit
// @Produce		json
// @Success		200	{object}	SpendingLimitResponse
// @Failure		500	{object}	SpendingLimitResponse
// @Router			/v1/spending-limit [get]
func GetSpendingLimit(c *gin.Context) {
	var limit models.SpendingLimit
	err := models.DB.Where(&models.SpendingLimit{UserID: currentUser(c).ID}).First(&limit).Error

	// An unset limit is not an error, the data is simply null
	if err != nil && errors.Is(err, models.ErrResourceNotFound) {
		c.JSON(http.StatusOK, SpendingLimitResponse{})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingLimitResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSpendingLimit(c, limit)
	c.JSON(http.StatusOK, SpendingLimitResponse{Data: &apiResource})
}

// @Summary		Set spending limit
// @Description	Creates the user's spending limit or replaces the value of the existing one
// @Tags			SpendingLimit
// @Accept			json
// @Produce		json
// @Success		200		{object}	SpendingLimitResponse
// @Success		201		{object}	SpendingLimitResponse
// @Failure		400		{object}	SpendingLimitResponse
// @Failure		500		{object}	SpendingLimitResponse
// @Param			limit	body		SpendingLimitEditable	true	"Spending limit"
// @Router			/v1/spending-limit [post]
func SetSpendingLimit(c *gin.Context) {
	var editable SpendingLimitEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingLimitResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	var limit models.SpendingLimit
	err = models.DB.Where(&models.SpendingLimit{UserID: user.ID}).First(&limit).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), SpendingLimitResponse{
			Error: &e,
		})
		return
	}

	httpStatus := http.StatusOK
	if limit.ID == 0 {
		limit = models.SpendingLimit{UserID: user.ID, Value: editable.Value}
		err = models.DB.Create(&limit).Error
		httpStatus = http.StatusCreated
	} else {
		limit.Value = editable.Value
		err = models.DB.Model(&limit).Update("value", editable.Value).Error
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingLimitResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSpendingLimit(c, limit)
	c.JSON(httpStatus, SpendingLimitResponse{Data: &apiResource})
}

// @Summary		Delete spending limit
// @Description	Removes the user's spending limit
// @Tags			SpendingLimit
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/spending-limit [delete]
func DeleteSpendingLimit(c *gin.Context) {
	var limit models.SpendingLimit
	err := models.DB.Where(&models.SpendingLimit{UserID: currentUser(c).ID}).First(&limit).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&limit).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
