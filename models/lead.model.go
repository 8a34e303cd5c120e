package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead pipeline statuses
const (
	LeadStatusSendPS = "SEND_PS" // proposal sent
	LeadStatusRecall = "RECALL"
	LeadStatusSign   = "SIGN"
	LeadStatusCancel = "CANCEL"
)

// Call outcome types
const (
	CallTypeFirst    = "FIRST"
	CallTypeSign     = "SIGN"
	CallTypeSendPS   = "SEND_PS"
	CallTypeDontCall = "DONT_CALL"
)

type Lead struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"index"`
	PhoneNumber string `gorm:"index"`
	Site        string
	Comment     string `gorm:"type:text"`
	Status      string `gorm:"default:''"`
	CallType    string `gorm:"default:''"`

	CompanyTypeID *string     `gorm:"type:uuid"`
	CompanyType   CompanyType `gorm:"foreignKey:CompanyTypeID"`

	WorkspaceID string    `gorm:"type:uuid;not null;index"`
	Workspace   Workspace `gorm:"foreignKey:WorkspaceID"`

	// Assigned user, if any
	ResponsibleID *string `gorm:"type:uuid"`
	Responsible   User    `gorm:"foreignKey:ResponsibleID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ValidLeadStatus reports whether s is one of the pipeline statuses.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusSendPS, LeadStatusRecall, LeadStatusSign, LeadStatusCancel:
		return true
	}
	return false
}

// ValidCallType reports whether s is one of the call outcome types.
func ValidCallType(s string) bool {
	switch s {
	case CallTypeFirst, CallTypeSign, CallTypeSendPS, CallTypeDontCall:
		return true
	}
	return false
}
