package acl

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crm/models"
)

// OverrideEntry is one requested per-user override.
type OverrideEntry struct {
	Code    PermissionCode `json:"code"`
	Allowed bool           `json:"allowed"`
}

// SetRolePermissions sweeps the full catalog: every permission gets a
// RolePermission row for the role, allowed when its code is in codes. Rows
// are updated only when the value actually changes and are never deleted, so
// each role keeps a complete allow/deny record per code. Calling twice with
// the same set is a no-op the second time.
func SetRolePermissions(db *gorm.DB, roleID string, codes []PermissionCode) error {
	var role models.Role
	if err := db.First(&role, "id = ?", roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	requested := make(map[PermissionCode]struct{}, len(codes))
	for _, code := range codes {
		if !KnownCode(code) {
			return fmt.Errorf("%w: %q", ErrUnknownPermission, code)
		}
		requested[code] = struct{}{}
	}

	var perms []models.Permission
	if err := db.Find(&perms).Error; err != nil {
		return err
	}

	for _, p := range perms {
		_, allowed := requested[PermissionCode(p.Code)]

		var existing models.RolePermission
		err := db.Where("role_id = ? AND permission_id = ?", role.ID, p.ID).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.Allowed != allowed {
				existing.Allowed = allowed
				if err := db.Save(&existing).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := models.RolePermission{RoleID: role.ID, PermissionID: p.ID, Allowed: allowed}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

// SetUserOverrides upserts per-user overrides with the same change-only
// update semantics as role permissions. Entries naming codes outside the
// catalog are rejected up front and nothing is written for that call.
func SetUserOverrides(db *gorm.DB, userID string, entries []OverrideEntry) error {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	for _, e := range entries {
		if !KnownCode(e.Code) {
			return fmt.Errorf("%w: %q", ErrUnknownPermission, e.Code)
		}
	}

	for _, e := range entries {
		var perm models.Permission
		if err := db.First(&perm, "code = ?", string(e.Code)).Error; err != nil {
			return err
		}

		var existing models.UserPermissionOverride
		err := db.Where("user_id = ? AND permission_id = ?", user.ID, perm.ID).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.Allowed != e.Allowed {
				existing.Allowed = e.Allowed
				if err := db.Save(&existing).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := models.UserPermissionOverride{UserID: user.ID, PermissionID: perm.ID, Allowed: e.Allowed}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

// SetUserRole reassigns the user's role wholesale. Existing overrides are
// untouched and keep applying against the new role.
func SetUserRole(db *gorm.DB, userID, roleID string) error {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	var role models.Role
	if err := db.First(&role, "id = ?", roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	return db.Model(&user).Update("role_id", role.ID).Error
}
