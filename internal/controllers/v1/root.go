package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Finances      string `json:"finances" example:"https://example.com/api/v1/finances"`            // URL of finance record collection endpoint
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                  // URL of goal collection endpoint
	SpendingLimit string `json:"spendingLimit" example:"https://example.com/api/v1/spending-limit"` // URL of the spending limit endpoint
	Family        string `json:"family" example:"https://example.com/api/v1/family"`                // URL of the family endpoint
	Charts        string `json:"charts" example:"https://example.com/api/v1/charts"`                // URL of the chart endpoint
	Notifications string `json:"notifications" example:"https://example.com/api/v1/notifications"`  // URL of the notification endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Finances:      url + "/v1/finances",
			Goals:         url + "/v1/goals",
			SpendingLimit: url + "/v1/spending-limit",
			Family:        url + "/v1/family",
			Charts:        url + "/v1/charts",
			Notifications: url + "/v1/notifications",
			Export:        url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
