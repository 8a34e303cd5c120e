package acl

import (
	"gorm.io/gorm"

	"crm/models"
)

// CanAccessWorkspace decides whether the user may touch a workspace-scoped
// resource. Holders of workspace.manage are implicitly members of every
// workspace; this fast-path reads the snapshot resolved by the permission
// gate, so a per-user override on workspace.manage counts the same way it
// does everywhere else. Without the fast-path an explicit, non-deleted
// membership row is required.
//
// An empty workspaceID means the operation is not workspace-scoped and there
// is nothing to check.
func CanAccessWorkspace(db *gorm.DB, userID, workspaceID string, resolved *ResolvedPermissions) (bool, error) {
	if resolved == nil {
		var err error
		resolved, err = Resolve(db, userID)
		if err != nil {
			return false, err
		}
	}

	if resolved.Allows(WorkspaceManage) {
		return true, nil
	}

	if workspaceID == "" {
		return true, nil
	}

	if userID == "" {
		return false, nil
	}

	var count int64
	err := db.Model(&models.WorkspaceMembership{}).
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
