package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/report"
	"github.com/cofrinho/backend/internal/types"
)

type FinanceEditable struct {
	Title       string               `json:"title" example:"Conta de luz" default:""`                                                                // Title of the record
	Value       decimal.Decimal      `json:"value" example:"132.90" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`   // Monetary value of the record
	Type        models.FinanceType   `json:"type" example:"Despesa" enums:"Receita,Despesa"`                                                        // Whether the record is income or an expense
	Status      models.FinanceStatus `json:"status" example:"Pendente" enums:"Pendente,Pago,Atrasada" default:"Pendente"`                           // Payment status of the record
	Category    string               `json:"category" example:"Moradia" default:""`                                                                 // Free-form category
	DueDate     *types.Date          `json:"dueDate" example:"2026-09-10"`                                                                          // The day the record is due
	PaymentDate *types.Date          `json:"paymentDate" example:"2026-09-08"`                                                                      // The day the record was paid
}

// model returns the database resource for the API representation of the editable fields
func (editable FinanceEditable) model(user models.User) models.Finance {
	return models.Finance{
		Title:       editable.Title,
		Value:       editable.Value,
		Type:        editable.Type,
		Status:      editable.Status,
		Category:    editable.Category,
		DueDate:     editable.DueDate,
		PaymentDate: editable.PaymentDate,
		CreatedByID: user.ID,
	}
}

// validate checks the enum fields against the allowed values. Empty values
// pass, partial updates do not carry every field.
func (editable FinanceEditable) validate() error {
	if editable.Type != "" &&
		editable.Type != models.FinanceTypeIncome && editable.Type != models.FinanceTypeExpense {
		return errFinanceTypeInvalid
	}

	if editable.Status != "" &&
		editable.Status != models.FinanceStatusPending &&
		editable.Status != models.FinanceStatusPaid &&
		editable.Status != models.FinanceStatusOverdue {
		return errFinanceStatusInvalid
	}

	return nil
}

type FinanceLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/finances/42"`                     // The finance record itself
	Attachments string `json:"attachments" example:"https://example.com/api/v1/finances/42/attachments"` // Attachments of the finance record
}

type Finance struct {
	models.Model
	FinanceEditable
	CreatedBy string       `json:"createdBy" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"` // ID of the user who created the record
	Links     FinanceLinks `json:"links"`
}

// newFinance returns the API v1 representation of the resource
func newFinance(c *gin.Context, model models.Finance) Finance {
	url := c.GetString(string(models.DBContextURL))

	return Finance{
		Model: model.Model,
		FinanceEditable: FinanceEditable{
			Title:       model.Title,
			Value:       model.Value,
			Type:        model.Type,
			Status:      model.Status,
			Category:    model.Category,
			DueDate:     model.DueDate,
			PaymentDate: model.PaymentDate,
		},
		CreatedBy: model.CreatedByID,
		Links: FinanceLinks{
			Self:        fmt.Sprintf("%s/v1/finances/%d", url, model.ID),
			Attachments: fmt.Sprintf("%s/v1/finances/%d/attachments", url, model.ID),
		},
	}
}

type FinanceListResponse struct {
	Data       []Finance   `json:"data"`                                                             // List of resources
	Error      *string     `json:"error" example:"the specified finance type is invalid"`            // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                       // Pagination information
}

type FinanceCreateResponse struct {
	Error *string           `json:"error" example:"the specified finance type is invalid"` // The error, if any occurred
	Data  []FinanceResponse `json:"data"`                                                  // List of created resources
}

func (t *FinanceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, FinanceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FinanceResponse struct {
	Error *string  `json:"error" example:"the specified finance type is invalid"` // The error, if any occurred
	Data  *Finance `json:"data"`                                                  // The resource
}

type FinanceQueryFilter struct {
	Title       string `form:"title" filterField:"false"`       // By substring in the title
	Category    string `form:"category" filterField:"false"`    // By substring in the category
	Type        string `form:"type" filterField:"false"`        // By record type
	Status      string `form:"status" filterField:"false"`      // By payment status
	DueDate     string `form:"dueDate" filterField:"false"`     // By exact due date
	PaymentDate string `form:"paymentDate" filterField:"false"` // By exact payment date
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first record returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of records to return. Defaults to 50.
}

// criteria translates the query string into the matching rules applied to
// the record list.
func (f FinanceQueryFilter) criteria() (report.Criteria, error) {
	criteria := report.Criteria{
		Title:    f.Title,
		Category: f.Category,
	}

	if f.Type != "" {
		financeType := models.FinanceType(f.Type)
		if financeType != models.FinanceTypeIncome && financeType != models.FinanceTypeExpense {
			return report.Criteria{}, errFinanceTypeInvalid
		}
		criteria.Type = financeType
	}

	if f.Status != "" {
		financeStatus := models.FinanceStatus(f.Status)
		if financeStatus != models.FinanceStatusPending &&
			financeStatus != models.FinanceStatusPaid &&
			financeStatus != models.FinanceStatusOverdue {
			return report.Criteria{}, errFinanceStatusInvalid
		}
		criteria.Status = financeStatus
	}

	if f.DueDate != "" {
		date, err := types.ParseDate(f.DueDate)
		if err != nil {
			return report.Criteria{}, err
		}
		criteria.DueDate = &date
	}

	if f.PaymentDate != "" {
		date, err := types.ParseDate(f.PaymentDate)
		if err != nil {
			return report.Criteria{}, err
		}
		criteria.PaymentDate = &date
	}

	return criteria, nil
}
