package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm/models"
)

func TestSetRolePermissionsSweepsCatalog(t *testing.T) {
	db := setupTestDb(t)

	role := models.Role{Code: "support", Name: "Support"}
	require.NoError(t, db.Create(&role).Error)

	require.NoError(t, SetRolePermissions(db, role.ID, []PermissionCode{LeadRead, MailSend}))

	var total, granted int64
	require.NoError(t, db.Model(&models.RolePermission{}).
		Where("role_id = ?", role.ID).Count(&total).Error)
	require.NoError(t, db.Model(&models.RolePermission{}).
		Where("role_id = ? AND allowed = ?", role.ID, true).Count(&granted).Error)

	assert.EqualValues(t, len(AllCodes()), total, "every catalog code gets a row")
	assert.EqualValues(t, 2, granted)
}

func TestSetRolePermissionsReplacesGrants(t *testing.T) {
	db := setupTestDb(t)

	role := models.Role{Code: "support", Name: "Support"}
	require.NoError(t, db.Create(&role).Error)
	user := createTestUser(t, db, "support@test.com", RoleCodeMember)
	require.NoError(t, SetUserRole(db, user.ID, role.ID))

	require.NoError(t, SetRolePermissions(db, role.ID, []PermissionCode{LeadRead}))
	allowed, _, err := CanPerform(db, user.ID, LeadRead)
	require.NoError(t, err)
	require.True(t, allowed)

	// A later call that omits the code revokes it.
	require.NoError(t, SetRolePermissions(db, role.ID, []PermissionCode{MailSend}))
	allowed, _, err = CanPerform(db, user.ID, LeadRead)
	require.NoError(t, err)
	assert.False(t, allowed)
	allowed, _, err = CanPerform(db, user.ID, MailSend)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestSetRolePermissionsIdempotent(t *testing.T) {
	db := setupTestDb(t)

	role := models.Role{Code: "support", Name: "Support"}
	require.NoError(t, db.Create(&role).Error)

	require.NoError(t, SetRolePermissions(db, role.ID, []PermissionCode{LeadRead}))
	require.NoError(t, SetRolePermissions(db, role.ID, []PermissionCode{LeadRead}))

	var total int64
	require.NoError(t, db.Model(&models.RolePermission{}).
		Where("role_id = ?", role.ID).Count(&total).Error)
	assert.EqualValues(t, len(AllCodes()), total, "no duplicate rows after a repeat call")
}

func TestSetRolePermissionsUnknownRole(t *testing.T) {
	db := setupTestDb(t)

	err := SetRolePermissions(db, "no-such-role", []PermissionCode{LeadRead})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestSetRolePermissionsUnknownCode(t *testing.T) {
	db := setupTestDb(t)

	role := models.Role{Code: "support", Name: "Support"}
	require.NoError(t, db.Create(&role).Error)

	err := SetRolePermissions(db, role.ID, []PermissionCode{LeadRead, "lead.fly"})
	require.ErrorIs(t, err, ErrUnknownPermission)

	var total int64
	require.NoError(t, db.Model(&models.RolePermission{}).
		Where("role_id = ?", role.ID).Count(&total).Error)
	assert.Zero(t, total, "a rejected call must not write anything")
}

func TestSetUserOverridesUnknownUser(t *testing.T) {
	db := setupTestDb(t)

	err := SetUserOverrides(db, "no-such-user", []OverrideEntry{{Code: LeadRead, Allowed: true}})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetUserOverridesUnknownCode(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)

	err := SetUserOverrides(db, user.ID, []OverrideEntry{
		{Code: LeadDelete, Allowed: true},
		{Code: "lead.fly", Allowed: true},
	})
	require.ErrorIs(t, err, ErrUnknownPermission)

	var total int64
	require.NoError(t, db.Model(&models.UserPermissionOverride{}).
		Where("user_id = ?", user.ID).Count(&total).Error)
	assert.Zero(t, total, "a rejected call must not write anything")
}

func TestSetUserOverridesFlipsValue(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)

	setOverride(t, db, user.ID, LeadDelete, true)
	setOverride(t, db, user.ID, LeadDelete, false)

	var total int64
	require.NoError(t, db.Model(&models.UserPermissionOverride{}).
		Where("user_id = ?", user.ID).Count(&total).Error)
	assert.EqualValues(t, 1, total, "flipping updates in place, no second row")

	allowed, _, err := CanPerform(db, user.ID, LeadDelete)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestSetUserRoleKeepsOverrides(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)
	setOverride(t, db, user.ID, LeadRead, false)

	var adminRole models.Role
	require.NoError(t, db.First(&adminRole, "code = ?", RoleCodeAdmin).Error)
	require.NoError(t, SetUserRole(db, user.ID, adminRole.ID))

	// The deny override keeps applying against the new role's grant.
	allowed, _, err := CanPerform(db, user.ID, LeadRead)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _, err = CanPerform(db, user.ID, AclManage)
	require.NoError(t, err)
	assert.True(t, allowed, "non-overridden codes follow the new role")
}

func TestSetUserRoleUnknownRole(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)

	err := SetUserRole(db, user.ID, "no-such-role")
	assert.ErrorIs(t, err, ErrRoleNotFound)

	err = SetUserRole(db, "no-such-user", user.RoleID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
