package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/storage"
)

// AttachmentURI identifies an attachment within a finance record.
type AttachmentURI struct {
	ID           uint `uri:"id" binding:"required"`           // ID of the finance record
	AttachmentID uint `uri:"attachmentId" binding:"required"` // ID of the attachment
}

// attachmentStorage opens the file store the attachment content is kept in.
func attachmentStorage() (*storage.Storage, error) {
	dir, ok := os.LookupEnv("ATTACHMENTS_DIR")
	if !ok {
		dir = filepath.Join("data", "attachments")
	}

	return storage.New(dir)
}

// getAttachment fetches a single attachment, scoped to a finance record the
// user can see.
func getAttachment(c *gin.Context, uri AttachmentURI) (models.Attachment, error) {
	_, err := getFinance(c, uri.ID)
	if err != nil {
		return models.Attachment{}, err
	}

	var attachment models.Attachment
	err = models.DB.
		Where(&models.Attachment{FinanceID: uri.ID}).
		First(&attachment, uri.AttachmentID).Error
	if err != nil {
		return models.Attachment{}, err
	}

	return attachment, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Attachments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id}/attachments [options]
func OptionsAttachments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getFinance(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Attachments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id				path	URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			attachmentId	path	AttachmentURI	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id}/attachments/{attachmentId} [options]
func OptionsAttachmentDetail(c *gin.Context) {
	var uri AttachmentURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getAttachment(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Upload attachments
// @Description	Uploads one or more files in the "files" multipart form field and attaches them to the finance record
// @Tags			Attachments
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	AttachmentCreateResponse
// @Failure		400		{object}	AttachmentCreateResponse
// @Failure		404		{object}	AttachmentCreateResponse
// @Failure		500		{object}	AttachmentCreateResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			files	formData	file	true	"Files to attach"
// @Router			/v1/finances/{id}/attachments [post]
func CreateAttachments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttachmentCreateResponse{
			Error: &e,
		})
		return
	}

	finance, err := getFinance(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttachmentCreateResponse{
			Error: &e,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		e := errAttachmentFileRequired.Error()
		c.JSON(http.StatusBadRequest, AttachmentCreateResponse{
			Error: &e,
		})
		return
	}

	store, err := attachmentStorage()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, AttachmentCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AttachmentCreateResponse{}

	user := currentUser(c)
	for _, header := range form.File["files"] {
		file, err := header.Open()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		key, err := store.Save(header.Filename, file)
		file.Close()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		attachment := models.Attachment{
			FinanceID:   finance.ID,
			Name:        filepath.Base(header.Filename),
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Key:         key,
			CreatedByID: user.ID,
		}
		err = models.DB.Create(&attachment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newAttachment(c, attachment)
		r.Data = append(r.Data, AttachmentResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		List attachments
// @Description	Returns the attachments of a finance record
// @Tags			Attachments
// @Produce		json
// @Success		200	{object}	AttachmentListResponse
// @Failure		400	{object}	AttachmentListResponse
// @Failure		404	{object}	AttachmentListResponse
// @Failure		500	{object}	AttachmentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id}/attachments [get]
func GetAttachments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttachmentListResponse{
			Error: &e,
		})
		return
	}

	finance, err := getFinance(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttachmentListResponse{
			Error: &e,
		})
		return
	}

	var attachments []models.Attachment
	err = models.DB.
		Where(&models.Attachment{FinanceID: finance.ID}).
		Order("created_at ASC, id ASC").
		Find(&attachments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AttachmentListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Attachment, 0, len(attachments))
	for _, attachment := range attachments {
		data = append(data, newAttachment(c, attachment))
	}

	c.JSON(http.StatusOK, AttachmentListResponse{Data: data})
}

// @Summary		Download attachment
// @Description	Returns the file content of an attachment
// @Tags			Attachments
// @Produce		octet-stream
// @Success		200
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			attachmentId	path		AttachmentURI	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id}/attachments/{attachmentId} [get]
func GetAttachment(c *gin.Context) {
	var uri AttachmentURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment, err := getAttachment(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	store, err := attachmentStorage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	content, err := store.Open(attachment.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}
	defer content.Close()

	disposition := fmt.Sprintf("attachment; filename=\"%s\"", attachment.Name)
	c.DataFromReader(http.StatusOK, attachment.Size, attachment.ContentType, content, map[string]string{
		"Content-Disposition": disposition,
	})
}

// @Summary		Delete attachment
// @Description	Deletes an attachment and its file content
// @Tags			Attachments
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path	URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			attachmentId	path	AttachmentURI	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id}/attachments/{attachmentId} [delete]
func DeleteAttachment(c *gin.Context) {
	var uri AttachmentURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment, err := getAttachment(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	store, err := attachmentStorage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	err = store.Delete(attachment.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&attachment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
