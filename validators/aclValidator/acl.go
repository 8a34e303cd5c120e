package aclValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"crm/acl"
	"crm/middleware"
)

// CreateRole validator middleware
func CreateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code string `json:"code"`
			Name string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Code)) < 2 {
			errors["code"] = "Role code must be at least 2 characters long!"
		}
		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Role name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}

// UpdateRole validator middleware
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code *string `json:"code"`
			Name *string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Code == nil && reqData.Name == nil {
			errors["body"] = "Nothing to update!"
		}
		if reqData.Code != nil && len(strings.TrimSpace(*reqData.Code)) < 2 {
			errors["code"] = "Role code must be at least 2 characters long!"
		}
		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Role name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoleUpdate", reqData)
		return c.Next()
	}
}

// SetRolePermissions validator middleware
func SetRolePermissions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PermissionCodes []string `json:"permissionCodes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PermissionCodes == nil {
			errors["permissionCodes"] = "permissionCodes is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRolePerms", reqData)
		return c.Next()
	}
}

// SetUserOverrides validator middleware
func SetUserOverrides() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Overrides []acl.OverrideEntry `json:"overrides"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Overrides) == 0 {
			errors["overrides"] = "At least one override is required!"
		}
		for _, ov := range reqData.Overrides {
			if strings.TrimSpace(string(ov.Code)) == "" {
				errors["overrides"] = "Override entries must carry a permission code!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOverrides", reqData)
		return c.Next()
	}
}

// SetUserRole validator middleware
func SetUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RoleID string `json:"roleId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.RoleID) == "" {
			errors["roleId"] = "roleId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserRole", reqData)
		return c.Next()
	}
}
