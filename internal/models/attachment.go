package models

import (
	"strings"

	"gorm.io/gorm"
)

// Attachment is a file uploaded for a finance record, e.g. a receipt.
// The content lives in the attachment storage, the row carries the
// user-visible metadata and the storage key.
type Attachment struct {
	Model
	FinanceID   uint    `json:"financeId" example:"17"`
	Finance     Finance `json:"-"`
	Name        string  `json:"name" example:"recibo.pdf"`
	ContentType string  `json:"contentType" example:"application/pdf"`
	Size        int64   `json:"size" example:"24096"`
	Key         string  `json:"-"`
	CreatedByID string  `json:"createdBy" example:"b1b2e7de-237e-4e91-bf73-0d1b6ea0cde1"`
	CreatedBy   User    `json:"-"`
}

func (a *Attachment) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if a.ContentType == "" {
		a.ContentType = "application/octet-stream"
	}

	return nil
}
