package models

import (
	"gorm.io/gorm"
)

// RolePermission is the per-role allow/deny flag over the catalog. At most one
// row exists per (role, permission); a missing row counts as denied.
type RolePermission struct {
	gorm.Model
	RoleID       string     `gorm:"type:uuid;not null;uniqueIndex:idx_role_perm"`
	PermissionID string     `gorm:"type:uuid;not null;uniqueIndex:idx_role_perm"`
	Permission   Permission `gorm:"foreignKey:PermissionID"`
	Allowed      bool       `gorm:"not null;default:false"`
}
