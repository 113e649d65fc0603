package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/models"
)

type URIID struct {
	ID uint `uri:"id" binding:"required"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoints
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// currentUser returns the user the middleware resolved for this request.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(string(models.DBContextUser)).(models.User)
}
