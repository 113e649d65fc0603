package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"

	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/report"
)

func RegisterFinanceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFinances)
		r.GET("", GetFinances)
		r.POST("", CreateFinances)
	}
	{
		r.OPTIONS("/:id", OptionsFinanceDetail)
		r.GET("/:id", GetFinance)
		r.PATCH("/:id", UpdateFinance)
		r.DELETE("/:id", DeleteFinance)
	}
	{
		r.OPTIONS("/:id/attachments", OptionsAttachments)
		r.GET("/:id/attachments", GetAttachments)
		r.POST("/:id/attachments", CreateAttachments)
	}
	{
		r.OPTIONS("/:id/attachments/:attachmentId", OptionsAttachmentDetail)
		r.GET("/:id/attachments/:attachmentId", GetAttachment)
		r.DELETE("/:id/attachments/:attachmentId", DeleteAttachment)
	}
}

// visibleFinances returns all records of the user's family, ordered the way
// the record table shows them.
func visibleFinances(c *gin.Context) ([]models.Finance, error) {
	ids, err := currentUser(c).FamilyMemberIDs(models.DB)
	if err != nil {
		return nil, err
	}

	var finances []models.Finance
	err = models.DB.
		Where("created_by_id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&finances).Error
	if err != nil {
		return nil, err
	}

	return finances, nil
}

// getFinance fetches a single record, scoped to the user's family.
func getFinance(c *gin.Context, id uint) (models.Finance, error) {
	ids, err := currentUser(c).FamilyMemberIDs(models.DB)
	if err != nil {
		return models.Finance{}, err
	}

	var finance models.Finance
	err = models.DB.Where("created_by_id IN ?", ids).First(&finance, id).Error
	if err != nil {
		return models.Finance{}, err
	}

	return finance, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Finances
// @Success		204
// @Router			/v1/finances [options]
func OptionsFinances(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Finances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id} [options]
func OptionsFinanceDetail(c *gin.Context) {
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

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create finance records
// @Description	Creates new finance records
// @Tags			Finances
// @Produce		json
// @Success		201			{object}	FinanceCreateResponse
// @Failure		400			{object}	FinanceCreateResponse
// @Failure		500			{object}	FinanceCreateResponse
// @Param			finances	body		[]FinanceEditable	true	"Finance records"
// @Router			/v1/finances [post]
func CreateFinances(c *gin.Context) {
	var finances []FinanceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &finances)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FinanceCreateResponse{}

	user := currentUser(c)
	for _, create := range finances {
		err := create.validate()
		if err == nil && create.Type == "" {
			err = errFinanceTypeInvalid
		}
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		finance := create.model(user)
		err = models.DB.Create(&finance).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newFinance(c, finance)
		r.Data = append(r.Data, FinanceResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get finance records
// @Description	Returns a list of finance records of the user's family
// @Tags			Finances
// @Produce		json
// @Success		200	{object}	FinanceListResponse
// @Failure		400	{object}	FinanceListResponse
// @Failure		500	{object}	FinanceListResponse
// @Router			/v1/finances [get]
// @Param			title		query	string	false	"Filter by substring in the title"
// @Param			category	query	string	false	"Filter by substring in the category"
// @Param			type		query	string	false	"Filter by record type"
// @Param			status		query	string	false	"Filter by payment status"
// @Param			dueDate		query	string	false	"Filter by exact due date"
// @Param			paymentDate	query	string	false	"Filter by exact payment date"
// @Param			offset		query	uint	false	"The offset of the first record returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of records to return. Defaults to 50."
func GetFinances(c *gin.Context) {
	var filter FinanceQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, FinanceListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	criteria, err := filter.criteria()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceListResponse{
			Error: &s,
		})
		return
	}

	finances, err := visibleFinances(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinanceListResponse{
			Error: &s,
		})
		return
	}

	finances = report.Filter(finances, criteria)
	count := int64(len(finances))

	// Set the offset. Does not need checking since the default is 0
	if int(filter.Offset) < len(finances) {
		finances = finances[filter.Offset:]
	} else {
		finances = finances[:0]
	}

	// Default to 50 records and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(finances) {
		finances = finances[:limit]
	}

	// Transform resources to their API representation
	data := make([]Finance, 0, len(finances))
	for _, finance := range finances {
		data = append(data, newFinance(c, finance))
	}

	c.JSON(http.StatusOK, FinanceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get finance record
// @Description	Returns a specific finance record
// @Tags			Finances
// @Produce		json
// @Success		200	{object}	FinanceResponse
// @Failure		400	{object}	FinanceResponse
// @Failure		404	{object}	FinanceResponse
// @Failure		500	{object}	FinanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id} [get]
func GetFinance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	finance, err := getFinance(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFinance(c, finance)
	c.JSON(http.StatusOK, FinanceResponse{Data: &apiResource})
}

// @Summary		Update finance record
// @Description	Updates an existing finance record. Only values to be updated need to be specified.
// @Tags			Finances
// @Accept			json
// @Produce		json
// @Success		200		{object}	FinanceResponse
// @Failure		400		{object}	FinanceResponse
// @Failure		404		{object}	FinanceResponse
// @Failure		500		{object}	FinanceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			finance	body		FinanceEditable	true	"Finance record"
// @Router			/v1/finances/{id} [patch]
func UpdateFinance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	finance, err := getFinance(c, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, FinanceEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data FinanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	err = data.validate()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&finance).Select("", updateFields...).Updates(data.model(currentUser(c))).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	// Save the full row once more so the status consistency rules in the
	// model hooks apply to the combined state, e.g. clearing the payment
	// date when a record goes back to pending
	err = models.DB.First(&finance, finance.ID).Error
	if err == nil {
		err = models.DB.Save(&finance).Error
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FinanceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFinance(c, finance)
	c.JSON(http.StatusOK, FinanceResponse{Data: &apiResource})
}

// @Summary		Delete finance record
// @Description	Deletes a finance record
// @Tags			Finances
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/finances/{id} [delete]
func DeleteFinance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	finance, err := getFinance(c, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Attachments go with their finance record, rows and file content both
	var attachments []models.Attachment
	err = models.DB.Where(&models.Attachment{FinanceID: finance.ID}).Find(&attachments).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if len(attachments) > 0 {
		store, err := attachmentStorage()
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		for _, attachment := range attachments {
			err = store.Delete(attachment.Key)
			if err == nil {
				err = models.DB.Delete(&attachment).Error
			}
			if err != nil {
				c.JSON(status(err), httpError{
					Error: err.Error(),
				})
				return
			}
		}
	}

	err = models.DB.Delete(&finance).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
