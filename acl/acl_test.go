package acl

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crm/models"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

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
	require.NoError(t, Seed(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, roleCode string) models.User {
	t.Helper()

	var role models.Role
	require.NoError(t, db.First(&role, "code = ?", roleCode).Error)

	user := models.User{
		FullName: "Test User",
		Email:    email,
		Password: "hashed",
		RoleID:   role.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestWorkspace(t *testing.T, db *gorm.DB, name string) models.Workspace {
	t.Helper()

	ws := models.Workspace{Name: name}
	require.NoError(t, db.Create(&ws).Error)
	return ws
}

func setOverride(t *testing.T, db *gorm.DB, userID string, code PermissionCode, allowed bool) {
	t.Helper()
	require.NoError(t, SetUserOverrides(db, userID, []OverrideEntry{{Code: code, Allowed: allowed}}))
}
