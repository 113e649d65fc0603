package models

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors the account the external identity provider manages.
//
// Authentication itself happens outside of this backend. Requests arrive
// with trusted headers identifying the user and the row is created on first
// sight, so the ID is the identity provider's ID, not one we generate.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"`
	Name      string    `json:"name" example:"Maria Silva"`
	Email     string    `json:"email" gorm:"uniqueIndex" example:"maria@example.com"`
	Image     string    `json:"image,omitempty"`
	FamilyID  *uint     `json:"familyId"`
	Family    *Family   `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FamilyMemberIDs returns the IDs of all users whose records the user may
// see: the whole family when they are in one, otherwise only themselves.
func (u User) FamilyMemberIDs(db *gorm.DB) ([]string, error) {
	if u.FamilyID == nil {
		return []string{u.ID}, nil
	}

	var users []User
	err := db.Where("family_id = ?", *u.FamilyID).Find(&users).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return ids, nil
}
