package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/report"
	"github.com/cofrinho/backend/internal/types"
)

func RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCharts)
	r.GET("", GetChart)
}

type ChartQueryFilter struct {
	FinanceQueryFilter
	View string `form:"view" filterField:"false"` // The time window of the chart. One of 7d, 1m, 3m, 6m, 1y. Defaults to 1m.
}

type ChartResponse struct {
	Error *string      `json:"error" example:"the view window must be one of 7d, 1m, 3m, 6m, 1y"` // The error, if any occurred
	Data  *report.View `json:"data"`                                                              // The assembled dashboard view
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Charts
// @Success		204
// @Router			/v1/charts [options]
func OptionsCharts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get chart
// @Description	Returns the dashboard view for a time window: gap-free chart buckets over all records and the table rows matching the filter
// @Tags			Charts
// @Produce		json
// @Success		200	{object}	ChartResponse
// @Failure		400	{object}	ChartResponse
// @Failure		500	{object}	ChartResponse
// @Router			/v1/charts [get]
// @Param			view		query	string	false	"Time window of the chart. One of 7d, 1m, 3m, 6m, 1y. Defaults to 1m."
// @Param			title		query	string	false	"Filter table rows by substring in the title"
// @Param			category	query	string	false	"Filter table rows by substring in the category"
// @Param			type		query	string	false	"Filter table rows by record type"
// @Param			status		query	string	false	"Filter table rows by payment status"
func GetChart(c *gin.Context) {
	var filter ChartQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return
	}

	window := report.ViewWindow(filter.View)
	if filter.View == "" {
		window = report.WindowThisMonth
	}

	criteria, err := filter.criteria()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &s,
		})
		return
	}

	finances, err := visibleFinances(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &s,
		})
		return
	}

	// The spending limit of the user is drawn into the chart when set
	var limitValue *decimal.Decimal
	var limit models.SpendingLimit
	err = models.DB.Where(&models.SpendingLimit{UserID: currentUser(c).ID}).First(&limit).Error
	if err == nil {
		limitValue = &limit.Value
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		s := err.Error()
		c.JSON(status(err), ChartResponse{
			Error: &s,
		})
		return
	}

	view, err := report.Assemble(finances, criteria, window, limitValue, types.Today())
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ChartResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ChartResponse{Data: &view})
}
