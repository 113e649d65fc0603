package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/export"
	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/types"
)

func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

type ExportQuery struct {
	Format string `form:"format"` // "pdf" or "excel"
	From   string `form:"from"`   // Start of the period in YYYY-MM-DD format
	Until  string `form:"until"`  // End of the period in YYYY-MM-DD format
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export finance records
// @Description	Renders the family's finance records in a date range as a downloadable PDF or Excel file
// @Tags			Export
// @Produce		application/pdf
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200	{file}		file
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
// @Param			format	query	string	true	"The file format, pdf or excel"
// @Param			from	query	string	true	"Start of the period in YYYY-MM-DD format"
// @Param			until	query	string	true	"End of the period in YYYY-MM-DD format"
func GetExport(c *gin.Context) {
	var query ExportQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidQueryString.Error(),
		})
		return
	}

	if query.Format != "pdf" && query.Format != "excel" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errExportFormatInvalid.Error(),
		})
		return
	}

	// A missing parameter becomes the zero date, export.InRange rejects it
	var from, until types.Date
	var err error
	if query.From != "" {
		from, err = types.ParseDate(query.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: errExportDateInvalid.Error(),
			})
			return
		}
	}
	if query.Until != "" {
		until, err = types.ParseDate(query.Until)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: errExportDateInvalid.Error(),
			})
			return
		}
	}

	finances, err := visibleFinances(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var data []byte
	var contentType, fileName string

	switch query.Format {
	case "pdf":
		data, err = export.PDF(finances, from, until)
		contentType = "application/pdf"
		fileName = fmt.Sprintf("registros-%s-%s.pdf", from, until)
	case "excel":
		data, err = export.Excel(finances, from, until)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		fileName = fmt.Sprintf("registros-%s-%s.xlsx", from, until)
	}

	if err != nil {
		httpStatus := http.StatusBadRequest
		if err == export.ErrNoRecords {
			httpStatus = http.StatusNotFound
		}
		c.JSON(httpStatus, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, data)
}
