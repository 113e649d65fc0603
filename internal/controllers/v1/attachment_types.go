package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/models"
)

type AttachmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/finances/17/attachments/3"` // The attachment itself, serving the file content
}

type Attachment struct {
	models.Model
	Name        string          `json:"name" example:"recibo.pdf"`                                // Original file name of the upload
	ContentType string          `json:"contentType" example:"application/pdf"`                    // MIME type of the content
	Size        int64           `json:"size" example:"24096"`                                     // Size of the content in bytes
	CreatedBy   string          `json:"createdBy" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"` // ID of the user who uploaded the file
	Links       AttachmentLinks `json:"links"`
}

// newAttachment returns the API v1 representation of the resource
func newAttachment(c *gin.Context, model models.Attachment) Attachment {
	url := c.GetString(string(models.DBContextURL))

	return Attachment{
		Model:       model.Model,
		Name:        model.Name,
		ContentType: model.ContentType,
		Size:        model.Size,
		CreatedBy:   model.CreatedByID,
		Links: AttachmentLinks{
			Self: fmt.Sprintf("%s/v1/finances/%d/attachments/%d", url, model.FinanceID, model.ID),
		},
	}
}

type AttachmentListResponse struct {
	Data  []Attachment `json:"data"`                                                            // List of resources
	Error *string      `json:"error" example:"there is no finance record matching your query"` // The error, if any occurred
}

type AttachmentCreateResponse struct {
	Error *string              `json:"error" example:"at least one file must be sent in the \"files\" form field"` // The error, if any occurred
	Data  []AttachmentResponse `json:"data"`                                                                      // List of created resources
}

func (t *AttachmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AttachmentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AttachmentResponse struct {
	Error *string     `json:"error" example:"there is no attachment matching your query"` // The error, if any occurred
	Data  *Attachment `json:"data"`                                                      // The resource
}
