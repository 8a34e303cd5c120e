package workspaceRoutes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crm/acl"
	"crm/config"
	"crm/database"
	"crm/middleware"
	"crm/models"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.User{},
		&models.UserPermissionOverride{},
		&models.Workspace{},
		&models.WorkspaceMembership{},
	))
	require.NoError(t, acl.Seed(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	SetupWorkspaceRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email, roleCode string) models.User {
	t.Helper()

	var role models.Role
	require.NoError(t, db.First(&role, "code = ?", roleCode).Error)

	user := models.User{FullName: "Test User", Email: email, Password: "hashed", RoleID: role.ID}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.FullName, "", user.Email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestMembershipRoutesRequireWorkspaceAccess(t *testing.T) {
	app, db := setupTestApp(t)

	updater := createUser(t, db, "updater@test.com", acl.RoleCodeMember)
	require.NoError(t, acl.SetUserOverrides(db, updater.ID, []acl.OverrideEntry{
		{Code: acl.WorkspaceUpdate, Allowed: true},
	}))
	other := createUser(t, db, "other@test.com", acl.RoleCodeMember)

	ws := models.Workspace{Name: "Sales"}
	require.NoError(t, db.Create(&ws).Error)

	// Holding workspace.update is not enough for a workspace the caller is
	// not a member of.
	resp := doRequest(t, app, fiber.MethodPatch,
		"/workspaces/"+ws.ID+"/users/"+updater.ID, tokenFor(t, updater), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodDelete,
		"/workspaces/"+ws.ID+"/users/"+other.ID, tokenFor(t, updater), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	require.NoError(t, db.Create(&models.WorkspaceMembership{UserID: updater.ID, WorkspaceID: ws.ID}).Error)

	resp = doRequest(t, app, fiber.MethodPatch,
		"/workspaces/"+ws.ID+"/users/"+other.ID, tokenFor(t, updater), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.WorkspaceMembership{}).
		Where("user_id = ? AND workspace_id = ?", other.ID, ws.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateWorkspaceAddsCreatorAsMember(t *testing.T) {
	app, db := setupTestApp(t)

	creator := createUser(t, db, "creator@test.com", acl.RoleCodeMember)
	require.NoError(t, acl.SetUserOverrides(db, creator.ID, []acl.OverrideEntry{
		{Code: acl.WorkspaceCreate, Allowed: true},
	}))

	resp := doRequest(t, app, fiber.MethodPost, "/workspaces", tokenFor(t, creator),
		fiber.Map{"name": "North Region"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var ws models.Workspace
	require.NoError(t, db.First(&ws, "name = ?", "North Region").Error)

	var count int64
	require.NoError(t, db.Model(&models.WorkspaceMembership{}).
		Where("user_id = ? AND workspace_id = ?", creator.ID, ws.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the creator must join the workspace they created")

	// And so the creator can enter it without workspace.manage.
	resp = doRequest(t, app, fiber.MethodGet, "/workspaces/"+ws.ID, tokenFor(t, creator), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWorkspaceListRequiresManage(t *testing.T) {
	app, db := setupTestApp(t)

	member := createUser(t, db, "member@test.com", acl.RoleCodeMember)
	admin := createUser(t, db, "admin@test.com", acl.RoleCodeAdmin)

	resp := doRequest(t, app, fiber.MethodGet, "/workspaces", tokenFor(t, member), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "members enumerate their own workspaces via /me only")

	resp = doRequest(t, app, fiber.MethodGet, "/workspaces", tokenFor(t, admin), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
