package aclRoutes

import (
	"github.com/gofiber/fiber/v2"

	"crm/acl"
	aclControllers "crm/controllers/aclController"
	"crm/middleware"
	aclValidators "crm/validators/aclValidator"
)

func SetupAclRoutes(app *fiber.App) {
	aclGroup := app.Group("/acl", middleware.JWTMiddleware)

	aclGroup.Get("/permissions", middleware.RequirePermission(acl.AclRead), aclControllers.ListPermissions)
	aclGroup.Get("/me/permissions", aclControllers.MyPermissions)

	aclGroup.Get("/roles", middleware.RequirePermission(acl.AclRead), aclControllers.ListRoles)
	aclGroup.Post("/roles", middleware.RequirePermission(acl.AclManage), aclValidators.CreateRole(), aclControllers.CreateRole)
	aclGroup.Patch("/roles/:id", middleware.RequirePermission(acl.AclManage), aclValidators.UpdateRole(), aclControllers.UpdateRole)
	aclGroup.Delete("/roles/:id", middleware.RequirePermission(acl.AclManage), aclControllers.DeleteRole)
	aclGroup.Post("/roles/:id/permissions", middleware.RequirePermission(acl.AclManage), aclValidators.SetRolePermissions(), aclControllers.SetRolePermissions)

	aclGroup.Post("/users/:id/overrides", middleware.RequirePermission(acl.AclManage), aclValidators.SetUserOverrides(), aclControllers.SetUserOverrides)
	aclGroup.Post("/users/:userId/role", middleware.RequirePermission(acl.AclManage), aclValidators.SetUserRole(), aclControllers.SetUserRole)
}
