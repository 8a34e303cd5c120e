package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm/models"
)

func TestWorkspaceManagerBypassesMembership(t *testing.T) {
	db := setupTestDb(t)
	admin := createTestUser(t, db, "admin@test.com", RoleCodeAdmin)
	ws := createTestWorkspace(t, db, "Sales")

	// No membership row exists, workspace.manage alone lets the admin in.
	ok, err := CanAccessWorkspace(db, admin.ID, ws.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWorkspaceManageOverrideBypassesMembership(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)
	ws := createTestWorkspace(t, db, "Sales")

	ok, err := CanAccessWorkspace(db, user.ID, ws.ID, nil)
	require.NoError(t, err)
	require.False(t, ok)

	setOverride(t, db, user.ID, WorkspaceManage, true)

	ok, err = CanAccessWorkspace(db, user.ID, ws.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok, "an override granting workspace.manage must open the fast-path")
}

func TestWorkspaceManageDenyOverrideFallsBackToMembership(t *testing.T) {
	db := setupTestDb(t)
	admin := createTestUser(t, db, "admin@test.com", RoleCodeAdmin)
	ws := createTestWorkspace(t, db, "Sales")

	setOverride(t, db, admin.ID, WorkspaceManage, false)

	ok, err := CanAccessWorkspace(db, admin.ID, ws.ID, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Create(&models.WorkspaceMembership{UserID: admin.ID, WorkspaceID: ws.ID}).Error)

	ok, err = CanAccessWorkspace(db, admin.ID, ws.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWorkspaceEmptyIDAllows(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)

	ok, err := CanAccessWorkspace(db, user.ID, "", nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWorkspaceMembershipGrantsAccess(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)
	ws := createTestWorkspace(t, db, "Sales")

	ok, err := CanAccessWorkspace(db, user.ID, ws.ID, nil)
	require.NoError(t, err)
	require.False(t, ok)

	membership := models.WorkspaceMembership{UserID: user.ID, WorkspaceID: ws.ID}
	require.NoError(t, db.Create(&membership).Error)

	ok, err = CanAccessWorkspace(db, user.ID, ws.ID, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWorkspaceSoftDeletedMembershipDenies(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)
	ws := createTestWorkspace(t, db, "Sales")

	membership := models.WorkspaceMembership{UserID: user.ID, WorkspaceID: ws.ID}
	require.NoError(t, db.Create(&membership).Error)
	require.NoError(t, db.Delete(&membership).Error)

	ok, err := CanAccessWorkspace(db, user.ID, ws.ID, nil)
	require.NoError(t, err)
	assert.False(t, ok, "a soft-deleted membership must not count")
}

func TestWorkspaceReusesResolvedSnapshot(t *testing.T) {
	db := setupTestDb(t)
	user := createTestUser(t, db, "member@test.com", RoleCodeMember)
	ws := createTestWorkspace(t, db, "Sales")

	_, resolved, err := CanPerform(db, user.ID, LeadRead)
	require.NoError(t, err)
	require.NotNil(t, resolved)

	ok, err := CanAccessWorkspace(db, user.ID, ws.ID, resolved)
	require.NoError(t, err)
	assert.False(t, ok)

	// Mutating the snapshot changes the decision without touching the database,
	// proving the check reads the snapshot and not a fresh query.
	resolved.Overrides[WorkspaceManage] = true
	ok, err = CanAccessWorkspace(db, user.ID, ws.ID, resolved)
	require.NoError(t, err)
	assert.True(t, ok)
}
