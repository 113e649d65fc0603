package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cofrinho/backend/internal/httputil"
	"github.com/cofrinho/backend/internal/models"
)

func RegisterFamilyRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFamily)
		r.GET("", GetFamily)
		r.POST("", CreateFamily)
		r.DELETE("", LeaveFamily)
	}
	{
		r.OPTIONS("/join", OptionsFamilyJoin)
		r.POST("/join", JoinFamily)
	}
	{
		r.OPTIONS("/members/:id", OptionsFamilyMember)
		r.DELETE("/members/:id", RemoveFamilyMember)
	}
}

type FamilyEditable struct {
	Name string `json:"name" example:"Silva" default:""` // Name of the family
}

type FamilyJoinEditable struct {
	Code string `json:"code" example:"40ab38a3-c766-4e72-8ce7-2b0231f0a8a9"` // Invite code of the family to join
}

type FamilyLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/family"`      // The family itself
	Join string `json:"join" example:"https://example.com/api/v1/family/join"` // Endpoint to join a family by invite code
}

type Family struct {
	models.Model
	FamilyEditable
	Code    string        `json:"code" example:"40ab38a3-c766-4e72-8ce7-2b0231f0a8a9"`    // Invite code for the family
	OwnerID string        `json:"ownerId" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"` // ID of the user owning the family
	Members []models.User `json:"members"`                                                // All members of the family
	Links   FamilyLinks   `json:"links"`
}

// newFamily returns the API v1 representation of the resource
func newFamily(c *gin.Context, model models.Family, members []models.User) Family {
	url := c.GetString(string(models.DBContextURL))

	if members == nil {
		members = []models.User{}
	}

	return Family{
		Model: model.Model,
		FamilyEditable: FamilyEditable{
			Name: model.Name,
		},
		Code:    model.Code,
		OwnerID: model.OwnerID,
		Members: members,
		Links: FamilyLinks{
			Self: fmt.Sprintf("%s/v1/family", url),
			Join: fmt.Sprintf("%s/v1/family/join", url),
		},
	}
}

type FamilyResponse struct {
	Error *string `json:"error" example:"you are not a member of any family"` // The error, if any occurred
	Data  *Family `json:"data"`                                               // The resource
}

// userFamily fetches the family of the user together with its members.
func userFamily(c *gin.Context, user models.User) (models.Family, []models.User, error) {
	if user.FamilyID == nil {
		return models.Family{}, nil, errNoFamily
	}

	var family models.Family
	err := models.DB.First(&family, *user.FamilyID).Error
	if err != nil {
		return models.Family{}, nil, err
	}

	members, err := family.Users(models.DB)
	if err != nil {
		return models.Family{}, nil, err
	}

	return family, members, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Family
// @Success		204
// @Router			/v1/family [options]
func OptionsFamily(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Family
// @Success		204
// @Router			/v1/family/join [options]
func OptionsFamilyJoin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Family
// @Success		204
// @Router			/v1/family/members/{id} [options]
func OptionsFamilyMember(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Get family
// @Description	Returns the family of the user with all members
// @Tags			Family
// @Produce		json
// @Success		200	{object}	FamilyResponse
// @Failure		404	{object}	FamilyResponse
// @Failure		500	{object}	FamilyResponse
// @Router			/v1/family [get]
func GetFamily(c *gin.Context) {
	family, members, err := userFamily(c, currentUser(c))
	if err != nil {
		e := err.Error()
		httpStatus := status(err)
		if errors.Is(err, errNoFamily) {
			httpStatus = http.StatusNotFound
		}
		c.JSON(httpStatus, FamilyResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFamily(c, family, members)
	c.JSON(http.StatusOK, FamilyResponse{Data: &apiResource})
}

// @Summary		Create family
// @Description	Creates a new family owned by the user. The invite code is generated by the backend.
// @Tags			Family
// @Accept			json
// @Produce		json
// @Success		201		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		500		{object}	FamilyResponse
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/family [post]
func CreateFamily(c *gin.Context) {
	user := currentUser(c)
	if user.FamilyID != nil {
		e := errFamilyExists.Error()
		c.JSON(http.StatusBadRequest, FamilyResponse{
			Error: &e,
		})
		return
	}

	var editable FamilyEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	family := models.Family{
		Name:    editable.Name,
		OwnerID: user.ID,
	}
	err = models.DB.Create(&family).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&models.User{ID: user.ID}).Update("family_id", family.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	members, err := family.Users(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFamily(c, family, members)
	c.JSON(http.StatusCreated, FamilyResponse{Data: &apiResource})
}

// @Summary		Join family
// @Description	Adds the user to the family identified by the invite code
// @Tags			Family
// @Accept			json
// @Produce		json
// @Success		200		{object}	FamilyResponse
// @Failure		400		{object}	FamilyResponse
// @Failure		404		{object}	FamilyResponse
// @Failure		500		{object}	FamilyResponse
// @Param			join	body		FamilyJoinEditable	true	"Invite code"
// @Router			/v1/family/join [post]
func JoinFamily(c *gin.Context) {
	user := currentUser(c)
	if user.FamilyID != nil {
		e := errFamilyExists.Error()
		c.JSON(http.StatusBadRequest, FamilyResponse{
			Error: &e,
		})
		return
	}

	var editable FamilyJoinEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	if editable.Code == "" {
		e := errFamilyCodeNotSet.Error()
		c.JSON(http.StatusBadRequest, FamilyResponse{
			Error: &e,
		})
		return
	}

	var family models.Family
	err = models.DB.Where(&models.Family{Code: editable.Code}).First(&family).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&models.User{ID: user.ID}).Update("family_id", family.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	members, err := family.Users(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FamilyResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFamily(c, family, members)
	c.JSON(http.StatusOK, FamilyResponse{Data: &apiResource})
}

// @Summary		Leave family
// @Description	Removes the user from their family. When the owner leaves, the family is deleted and all members are detached.
// @Tags			Family
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/family [delete]
func LeaveFamily(c *gin.Context) {
	user := currentUser(c)

	family, _, err := userFamily(c, user)
	if err != nil {
		httpStatus := status(err)
		if errors.Is(err, errNoFamily) {
			httpStatus = http.StatusNotFound
		}
		c.JSON(httpStatus, httpError{
			Error: err.Error(),
		})
		return
	}

	if family.OwnerID == user.ID {
		// The owner dissolves the family
		err = models.DB.Model(&models.User{}).Where("family_id = ?", family.ID).Update("family_id", nil).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		err = models.DB.Delete(&family).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusNoContent, nil)
		return
	}

	err = models.DB.Model(&models.User{ID: user.ID}).Update("family_id", nil).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Remove family member
// @Description	Removes a member from the family. Only the owner can remove members.
// @Tags			Family
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the member to remove"
// @Router			/v1/family/members/{id} [delete]
func RemoveFamilyMember(c *gin.Context) {
	user := currentUser(c)

	family, members, err := userFamily(c, user)
	if err != nil {
		httpStatus := status(err)
		if errors.Is(err, errNoFamily) {
			httpStatus = http.StatusNotFound
		}
		c.JSON(httpStatus, httpError{
			Error: err.Error(),
		})
		return
	}

	if family.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, httpError{
			Error: errNotFamilyOwner.Error(),
		})
		return
	}

	memberID := c.Param("id")
	if memberID == user.ID {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errFamilyRemoveSelf.Error(),
		})
		return
	}

	var member *models.User
	for i := range members {
		if members[i].ID == memberID {
			member = &members[i]
			break
		}
	}

	if member == nil {
		c.JSON(http.StatusNotFound, httpError{
			Error: errFamilyMemberInvalid.Error(),
		})
		return
	}

	err = models.DB.Model(member).Update("family_id", nil).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
