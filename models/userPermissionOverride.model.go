package models

import (
	"gorm.io/gorm"
)

// UserPermissionOverride takes absolute precedence over the user's role
// permission for its code, in both directions.
type UserPermissionOverride struct {
	gorm.Model
	UserID       string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_perm"`
	PermissionID string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_perm"`
	Permission   Permission `gorm:"foreignKey:PermissionID"`
	Allowed      bool       `gorm:"not null;default:false"`
}
