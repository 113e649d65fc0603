package v1

import (
	"errors"
	"net/http"

	"github.com/cofrinho/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no finance record matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Export errors
var (
	errExportFormatInvalid = errors.New("the export format must be either \"pdf\" or \"excel\"")
	errExportDateInvalid   = errors.New("the from and until parameters must be dates in YYYY-MM-DD format")
)

// Attachment errors
var errAttachmentFileRequired = errors.New("at least one file must be sent in the \"files\" form field")

// Family errors
var (
	errFamilyExists        = errors.New("you are already a member of a family, leave it before creating or joining another one")
	errFamilyCodeNotSet    = errors.New("the code parameter must be set to join a family")
	errNoFamily            = errors.New("you are not a member of any family")
	errNotFamilyOwner      = errors.New("only the family owner can remove members")
	errFamilyMemberInvalid = errors.New("this user is not a member of your family")
	errFamilyRemoveSelf    = errors.New("you can not remove yourself from your own family, delete the family instead")
)

// Finance errors
var (
	errFinanceTypeInvalid   = errors.New("the specified finance type is invalid")
	errFinanceStatusInvalid = errors.New("the specified finance status is invalid")
)

// Notification errors
var errSessionNotSet = errors.New("the session parameter must be set")
