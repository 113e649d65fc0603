package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Family is a group of users sharing their finance records.
type Family struct {
	Model
	Name    string `json:"name" example:"Silva"`
	Code    string `json:"code" gorm:"uniqueIndex" example:"40ab38a3-c766-4e72-8ce7-2b0231f0a8a9"`
	OwnerID string `json:"ownerId" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"`
	Owner   User   `json:"-"`
}

var (
	ErrFamilyCodeNotUnique = errors.New("the generated family code already exists, please try again")
	ErrUserEmailNotUnique  = errors.New("a user with this e-mail address already exists")
	ErrSpendingLimitExists = errors.New("a spending limit is already configured for this user")
)

// BeforeCreate generates the invite code for the family.
func (f *Family) BeforeCreate(_ *gorm.DB) error {
	f.Code = uuid.NewString()
	return nil
}

func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	return nil
}

// Users returns all members of the family.
func (f Family) Users(db *gorm.DB) ([]User, error) {
	var users []User
	err := db.Where("family_id = ?", f.ID).Order("name ASC").Find(&users).Error
	return users, err
}
