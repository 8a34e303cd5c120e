package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"crm/acl"
	"crm/database"
)

const resolvedPermsKey = "resolvedPerms"

// RequirePermission returns the authorization gate for an endpoint. The codes
// are alternatives: the request passes when the user holds at least one of
// them. The resolved snapshot is stashed on the request for the workspace
// gate, so both checks see the same state without a second round of queries.
//
// Rejections stay generic on purpose: callers never learn which permission
// was missing.
func RequirePermission(codes ...acl.PermissionCode) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok || userID == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		allowed, resolved, err := acl.CanPerform(database.Database.Db, userID, codes...)
		if err != nil {
			if errors.Is(err, acl.ErrUserNotFound) {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
			}
			log.Printf("Error resolving permissions for user %s: %v", userID, err)
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
		}
		if !allowed {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals(resolvedPermsKey, resolved)
		return c.Next()
	}
}

// RequireWorkspaceAccess gates workspace-scoped routes. It must run after
// RequirePermission so it can reuse the snapshot that gate resolved.
func RequireWorkspaceAccess(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	workspaceID := c.Params("workspaceId")
	resolved, _ := c.Locals(resolvedPermsKey).(*acl.ResolvedPermissions)

	allowed, err := acl.CanAccessWorkspace(database.Database.Db, userID, workspaceID, resolved)
	if err != nil {
		if errors.Is(err, acl.ErrUserNotFound) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		log.Printf("Error checking workspace access for user %s: %v", userID, err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
	}
	if !allowed {
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	return c.Next()
}
