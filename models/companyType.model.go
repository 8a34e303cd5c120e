package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyType is an editable enum-like classifier for leads.
type CompanyType struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Code string `gorm:"unique;not null"`
	Name string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ct *CompanyType) BeforeCreate(tx *gorm.DB) error {
	if ct.ID == "" {
		ct.ID = uuid.NewString()
	}
	return nil
}
