package aclController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"crm/acl"
	"crm/database"
	"crm/middleware"
	"crm/models"
)

// ListPermissions returns the full permission catalog.
func ListPermissions(c *fiber.Ctx) error {
	var perms []models.Permission
	if err := database.Database.Db.Order("code").Find(&perms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch permissions!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Permission catalog.", perms)
}

// MyPermissions returns the caller's effective permission set, overrides
// applied on top of role grants.
func MyPermissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	codes, err := acl.EffectivePermissions(database.Database.Db, userID)
	if err != nil {
		if errors.Is(err, acl.ErrUserNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		log.Printf("Error listing permissions for user %s: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch permissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Effective permissions.", fiber.Map{
		"permissions": codes,
	})
}

func ListRoles(c *fiber.Ctx) error {
	var roles []models.Role
	if err := database.Database.Db.Order("code").Find(&roles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roles!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role list.", roles)
}

func CreateRole(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRole").(*struct {
		Code string `json:"code"`
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("code = ?", reqData.Code).First(&models.Role{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Role code already exists!", nil)
	}

	role := models.Role{Code: reqData.Code, Name: reqData.Name}
	if err := db.Create(&role).Error; err != nil {
		log.Printf("Error creating role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Role created.", role)
}

func UpdateRole(c *fiber.Ctx) error {
	roleID := c.Params("id")

	reqData, ok := c.Locals("validatedRoleUpdate").(*struct {
		Code *string `json:"code"`
		Name *string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var role models.Role
	if err := db.First(&role, "id = ?", roleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role not found!", nil)
	}

	if reqData.Code != nil {
		role.Code = *reqData.Code
	}
	if reqData.Name != nil {
		role.Name = *reqData.Name
	}

	if err := db.Save(&role).Error; err != nil {
		log.Printf("Error updating role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated.", role)
}

// DeleteRole removes a role that no user holds. Every user must keep exactly
// one role, so roles still in use cannot be deleted.
func DeleteRole(c *fiber.Ctx) error {
	roleID := c.Params("id")

	db := database.Database.Db

	var role models.Role
	if err := db.First(&role, "id = ?", roleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role not found!", nil)
	}

	var inUse int64
	if err := db.Model(&models.User{}).Where("role_id = ?", role.ID).Count(&inUse).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete role!", nil)
	}
	if inUse > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Role is still assigned to users!", nil)
	}

	if err := db.Where("role_id = ?", role.ID).Delete(&models.RolePermission{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete role!", nil)
	}
	if err := db.Delete(&role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role deleted.", nil)
}

// SetRolePermissions replaces a role's stance over the whole catalog.
func SetRolePermissions(c *fiber.Ctx) error {
	roleID := c.Params("id")

	reqData, ok := c.Locals("validatedRolePerms").(*struct {
		PermissionCodes []string `json:"permissionCodes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	codes := make([]acl.PermissionCode, 0, len(reqData.PermissionCodes))
	for _, code := range reqData.PermissionCodes {
		codes = append(codes, acl.PermissionCode(code))
	}

	err := acl.SetRolePermissions(database.Database.Db, roleID, codes)
	if err != nil {
		switch {
		case errors.Is(err, acl.ErrRoleNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role not found!", nil)
		case errors.Is(err, acl.ErrUnknownPermission):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		default:
			log.Printf("Error setting role permissions: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to set role permissions!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role permissions updated.", nil)
}

// SetUserOverrides upserts per-user permission overrides.
func SetUserOverrides(c *fiber.Ctx) error {
	userID := c.Params("id")

	reqData, ok := c.Locals("validatedOverrides").(*struct {
		Overrides []acl.OverrideEntry `json:"overrides"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := acl.SetUserOverrides(database.Database.Db, userID, reqData.Overrides)
	if err != nil {
		switch {
		case errors.Is(err, acl.ErrUserNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, acl.ErrUnknownPermission):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		default:
			log.Printf("Error setting user overrides: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to set user overrides!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User overrides updated.", nil)
}

// SetUserRole reassigns a user's role.
func SetUserRole(c *fiber.Ctx) error {
	userID := c.Params("userId")

	reqData, ok := c.Locals("validatedUserRole").(*struct {
		RoleID string `json:"roleId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := acl.SetUserRole(database.Database.Db, userID, reqData.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, acl.ErrUserNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, acl.ErrRoleNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role not found!", nil)
		default:
			log.Printf("Error setting user role: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to set user role!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated.", nil)
}
