package leadRoutes

import (
	"encoding/json"
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
		&models.CompanyType{},
		&models.Lead{},
	))
	require.NoError(t, acl.Seed(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	SetupLeadRoutes(app)
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

func getLeads(t *testing.T, app *fiber.App, user models.User) *http.Response {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.FullName, "", user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGlobalLeadListingSpansWorkspaces(t *testing.T) {
	app, db := setupTestApp(t)

	wsA := models.Workspace{Name: "North"}
	wsB := models.Workspace{Name: "South"}
	require.NoError(t, db.Create(&wsA).Error)
	require.NoError(t, db.Create(&wsB).Error)
	require.NoError(t, db.Create(&models.Lead{Name: "Acme", WorkspaceID: wsA.ID}).Error)
	require.NoError(t, db.Create(&models.Lead{Name: "Globex", WorkspaceID: wsB.ID}).Error)

	user := createUser(t, db, "member@test.com", acl.RoleCodeMember)

	// lead.read is one of the accepted alternatives.
	resp := getLeads(t, app, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Lead `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 2, "the listing is not scoped to one workspace")
}

func TestGlobalLeadListingAcceptsFullRead(t *testing.T) {
	app, db := setupTestApp(t)

	user := createUser(t, db, "member@test.com", acl.RoleCodeMember)
	require.NoError(t, acl.SetUserOverrides(db, user.ID, []acl.OverrideEntry{
		{Code: acl.LeadRead, Allowed: false},
	}))

	resp := getLeads(t, app, user)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// lead.full-read alone satisfies the gate.
	require.NoError(t, acl.SetUserOverrides(db, user.ID, []acl.OverrideEntry{
		{Code: acl.LeadFullRead, Allowed: true},
	}))

	resp = getLeads(t, app, user)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
