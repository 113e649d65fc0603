package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
)

type GoalEditable struct {
	Title       string          `json:"title" example:"Viagem de férias" default:""`                                                           // Title of the goal
	TargetValue decimal.Decimal `json:"targetValue" example:"5000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // How much money should be saved for this goal?
	Deadline    *types.Date     `json:"deadline" example:"2027-01-31"`                                                                         // The day the goal should be reached, if any
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model(user models.User) models.Goal {
	return models.Goal{
		Title:       editable.Title,
		TargetValue: editable.TargetValue,
		Deadline:    editable.Deadline,
		UserID:      user.ID,
	}
}

type GoalLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/goals/7"`            // The goal itself
	Records string `json:"records" example:"https://example.com/api/v1/goals/7/records"` // The ledger of the goal
}

type Goal struct {
	models.Model
	GoalEditable
	CurrentValue decimal.Decimal      `json:"currentValue" example:"1250.00"` // Signed sum of all records of the goal
	Achieved     bool                 `json:"achieved" example:"false"`       // Whether the goal has reached its target
	Records      []models.GoalRecord  `json:"records"`                        // The ledger entries of the goal
	Links        GoalLinks            `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	records := model.Records
	if records == nil {
		records = []models.GoalRecord{}
	}

	return Goal{
		Model: model.Model,
		GoalEditable: GoalEditable{
			Title:       model.Title,
			TargetValue: model.TargetValue,
			Deadline:    model.Deadline,
		},
		CurrentValue: model.CurrentValue,
		Achieved:     model.Achieved(),
		Records:      records,
		Links: GoalLinks{
			Self:    fmt.Sprintf("%s/v1/goals/%d", url, model.ID),
			Records: fmt.Sprintf("%s/v1/goals/%d/records", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                 // List of resources
	Error      *string     `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                           // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"goal target values must be larger than zero"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                        // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                 // The resource
}

type GoalQueryFilter struct {
	Title    string `form:"title" filterField:"false"`    // By substring in the title
	Achieved string `form:"achieved" filterField:"false"` // By whether the goal is achieved ("true" or "false")
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of goals to return. Defaults to 50.
}

type GoalRecordEditable struct {
	Title     string                     `json:"title" example:"Depósito mensal" default:""`                                                       // Title of the ledger entry
	Value     decimal.Decimal            `json:"value" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Monetary value of the entry
	Direction models.GoalRecordDirection `json:"direction" example:"Adicionar" enums:"Adicionar,Retirar"`                                          // Whether money is added to or withdrawn from the goal
}

// model returns the database resource for the API representation of the editable fields.
// An empty title defaults to a description derived from the direction and goal.
func (editable GoalRecordEditable) model(goal models.Goal) models.GoalRecord {
	title := editable.Title
	if title == "" {
		title = fmt.Sprintf("%s em %s", editable.Direction, goal.Title)
	}

	return models.GoalRecord{
		GoalID:    goal.ID,
		Title:     title,
		Value:     editable.Value,
		Direction: editable.Direction,
	}
}

type GoalRecordResponse struct {
	Error *string            `json:"error" example:"the goal record direction must be either \"Adicionar\" or \"Retirar\""` // The error, if any occurred
	Data  *models.GoalRecord `json:"data"`                                                                                 // The created ledger entry
}
