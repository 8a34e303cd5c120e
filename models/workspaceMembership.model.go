package models

import (
	"gorm.io/gorm"
)

// WorkspaceMembership relates a user to a workspace. Presence of a live row
// means member; a soft-deleted or missing row means not a member.
type WorkspaceMembership struct {
	gorm.Model
	UserID      string    `gorm:"type:uuid;not null;index:idx_user_workspace"`
	WorkspaceID string    `gorm:"type:uuid;not null;index:idx_user_workspace"`
	User        User      `gorm:"foreignKey:UserID"`
	Workspace   Workspace `gorm:"foreignKey:WorkspaceID"`
}
