package v1

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/alert"
	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
)

func RegisterNotificationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsNotifications)
	r.GET("", GetNotifications)
	r.DELETE("", DeleteNotifications)
}

// Evaluators are kept per session so a rule fires once per session, not
// once per poll. A session ends when the client deletes it, usually on
// logout.
var (
	sessionsMu sync.Mutex
	sessions   = make(map[string]*alert.Evaluator)
)

// sessionKey scopes the session to the authenticated user. The session value
// is client-chosen, without the user ID one client could consume or clear the
// de-duplication state of another user.
func sessionKey(c *gin.Context, session string) string {
	return currentUser(c).ID + ":" + session
}

func sessionEvaluator(c *gin.Context, session string) *alert.Evaluator {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	key := sessionKey(c, session)
	e, ok := sessions[key]
	if !ok {
		e = alert.NewEvaluator()
		sessions[key] = e
	}

	return e
}

type NotificationQuery struct {
	Session string `form:"session"` // Client session the de-duplication is scoped to
}

type NotificationListResponse struct {
	Error *string              `json:"error" example:"the session parameter must be set"` // The error, if any occurred
	Data  []alert.Notification `json:"data"`                                              // The newly emitted notifications
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func OptionsNotifications(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Get notifications
// @Description	Evaluates the user's finance records and goals and returns the notifications that have not yet been emitted in this session
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationListResponse
// @Failure		400	{object}	NotificationListResponse
// @Failure		500	{object}	NotificationListResponse
// @Router			/v1/notifications [get]
// @Param			session	query	string	true	"Client session the de-duplication is scoped to"
func GetNotifications(c *gin.Context) {
	var query NotificationQuery
	if err := c.Bind(&query); err != nil || query.Session == "" {
		s := errSessionNotSet.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{
			Error: &s,
		})
		return
	}

	finances, err := visibleFinances(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	var goals []models.Goal
	err = models.DB.Where(&models.Goal{UserID: currentUser(c).ID}).Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	evaluator := sessionEvaluator(c, query.Session)
	today := types.Today()

	notifications := evaluator.EvaluateFinances(finances, today)
	notifications = append(notifications, evaluator.EvaluateGoals(goals, today)...)
	if notifications == nil {
		notifications = []alert.Notification{}
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: notifications})
}

// @Summary		Delete notification session
// @Description	Forgets the de-duplication state of a session so every rule can fire again
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/notifications [delete]
func DeleteNotifications(c *gin.Context) {
	var query NotificationQuery
	if err := c.Bind(&query); err != nil || query.Session == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errSessionNotSet.Error(),
		})
		return
	}

	sessionsMu.Lock()
	delete(sessions, sessionKey(c, query.Session))
	sessionsMu.Unlock()

	c.JSON(http.StatusNoContent, nil)
}
