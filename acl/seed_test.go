package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm/models"
)

func TestSeedCreatesCatalogAndRoles(t *testing.T) {
	db := setupTestDb(t)

	var permCount, roleCount, rolePermCount int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permCount).Error)
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	require.NoError(t, db.Model(&models.RolePermission{}).Count(&rolePermCount).Error)

	assert.EqualValues(t, len(AllCodes()), permCount)
	assert.EqualValues(t, 3, roleCount)
	assert.EqualValues(t, 3*len(AllCodes()), rolePermCount, "each role gets a row per code")
}

func TestSeedIdempotent(t *testing.T) {
	db := setupTestDb(t)
	require.NoError(t, Seed(db))

	var permCount, rolePermCount int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permCount).Error)
	require.NoError(t, db.Model(&models.RolePermission{}).Count(&rolePermCount).Error)

	assert.EqualValues(t, len(AllCodes()), permCount)
	assert.EqualValues(t, 3*len(AllCodes()), rolePermCount)
}

func TestSeedPreservesOperatorChanges(t *testing.T) {
	db := setupTestDb(t)

	var memberRole models.Role
	require.NoError(t, db.First(&memberRole, "code = ?", RoleCodeMember).Error)

	// An operator grants members lead.delete; a later boot must not revert it.
	require.NoError(t, SetRolePermissions(db, memberRole.ID, []PermissionCode{
		LeadRead, LeadStatus, CompanyTypeRead, WorkspaceRead, AclRead, MailSend, LeadDelete,
	}))
	require.NoError(t, Seed(db))

	user := createTestUser(t, db, "member@test.com", RoleCodeMember)
	allowed, _, err := CanPerform(db, user.ID, LeadDelete)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestSeedRoleGrants(t *testing.T) {
	db := setupTestDb(t)

	admin := createTestUser(t, db, "admin@test.com", RoleCodeAdmin)
	manager := createTestUser(t, db, "manager@test.com", RoleCodeManager)
	member := createTestUser(t, db, "member@test.com", RoleCodeMember)

	adminPerms, err := EffectivePermissions(db, admin.ID)
	require.NoError(t, err)
	assert.Len(t, adminPerms, len(AllCodes()))

	allowed, _, err := CanPerform(db, manager.ID, AclManage)
	require.NoError(t, err)
	assert.False(t, allowed, "managers cannot administer the permission system")
	allowed, _, err = CanPerform(db, manager.ID, LeadManage)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = CanPerform(db, member.ID, WorkspaceCreate)
	require.NoError(t, err)
	assert.False(t, allowed)
	allowed, _, err = CanPerform(db, member.ID, MailSend)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestBootstrapRoleCode(t *testing.T) {
	db := setupTestDb(t)

	code, err := BootstrapRoleCode(db)
	require.NoError(t, err)
	assert.Equal(t, RoleCodeAdmin, code, "the first registered user becomes admin")

	createTestUser(t, db, "first@test.com", RoleCodeAdmin)

	code, err = BootstrapRoleCode(db)
	require.NoError(t, err)
	assert.Equal(t, RoleCodeMember, code)
}
