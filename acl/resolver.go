package acl

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"crm/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrNoRoleAssigned    = errors.New("user has no role assigned")
	ErrUnknownPermission = errors.New("unknown permission code")
	ErrNoCodesRequired   = errors.New("no permission codes given")
)

// ResolvedPermissions is the snapshot of one user's role permissions and
// overrides, loaded once per request by the authorization gate and reused by
// the workspace check so both observe the same state.
type ResolvedPermissions struct {
	RolePerms map[PermissionCode]bool
	Overrides map[PermissionCode]bool
}

// Allows applies the precedence order for one code: an override is
// authoritative in both directions, otherwise the role row decides, and a
// missing row denies.
func (rp *ResolvedPermissions) Allows(code PermissionCode) bool {
	if allowed, ok := rp.Overrides[code]; ok {
		return allowed
	}
	return rp.RolePerms[code]
}

// Resolve loads the full permission snapshot for a user: every role-permission
// row of the user's role plus every override of the user.
func Resolve(db *gorm.DB, userID string) (*ResolvedPermissions, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.RoleID == "" {
		// Should never happen: every user gets a role at registration.
		return nil, fmt.Errorf("%w: user %s", ErrNoRoleAssigned, userID)
	}

	var rolePerms []models.RolePermission
	if err := db.Preload("Permission").
		Where("role_id = ?", user.RoleID).
		Find(&rolePerms).Error; err != nil {
		return nil, err
	}

	var overrides []models.UserPermissionOverride
	if err := db.Preload("Permission").
		Where("user_id = ?", user.ID).
		Find(&overrides).Error; err != nil {
		return nil, err
	}

	resolved := &ResolvedPermissions{
		RolePerms: make(map[PermissionCode]bool, len(rolePerms)),
		Overrides: make(map[PermissionCode]bool, len(overrides)),
	}
	for _, rp := range rolePerms {
		resolved.RolePerms[PermissionCode(rp.Permission.Code)] = rp.Allowed
	}
	for _, ov := range overrides {
		resolved.Overrides[PermissionCode(ov.Permission.Code)] = ov.Allowed
	}
	return resolved, nil
}

// CanPerform decides whether the user may perform an action guarded by the
// given codes. Multiple codes are alternatives: the user passes if at least
// one of them resolves to allowed. The resolved snapshot is returned for
// reuse by the workspace check within the same request.
func CanPerform(db *gorm.DB, userID string, codes ...PermissionCode) (bool, *ResolvedPermissions, error) {
	if len(codes) == 0 {
		return false, nil, ErrNoCodesRequired
	}
	for _, code := range codes {
		if !KnownCode(code) {
			return false, nil, fmt.Errorf("%w: %q", ErrUnknownPermission, code)
		}
	}

	resolved, err := Resolve(db, userID)
	if err != nil {
		return false, nil, err
	}

	for _, code := range codes {
		if resolved.Allows(code) {
			return true, resolved, nil
		}
	}
	return false, resolved, nil
}

// EffectivePermissions returns the codes the user is allowed after overlaying
// overrides on the role's grants. Used by the self-service "my permissions"
// endpoint.
func EffectivePermissions(db *gorm.DB, userID string) ([]PermissionCode, error) {
	resolved, err := Resolve(db, userID)
	if err != nil {
		return nil, err
	}

	effective := make([]PermissionCode, 0)
	for _, code := range AllCodes() {
		if resolved.Allows(code) {
			effective = append(effective, code)
		}
	}
	return effective, nil
}
