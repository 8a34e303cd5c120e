package workspaceRoutes

import (
	"github.com/gofiber/fiber/v2"

	"crm/acl"
	workspaceControllers "crm/controllers/workspaceController"
	"crm/middleware"
	workspaceValidators "crm/validators/workspaceValidator"
)

func SetupWorkspaceRoutes(app *fiber.App) {
	wsGroup := app.Group("/workspaces", middleware.JWTMiddleware)

	// Listing every workspace is a global-manager view; members use /me.
	wsGroup.Get("/", middleware.RequirePermission(acl.WorkspaceManage), workspaceControllers.WorkspaceList)
	wsGroup.Get("/me", workspaceControllers.MyWorkspaces)
	wsGroup.Post("/", middleware.RequirePermission(acl.WorkspaceCreate), workspaceValidators.CreateWorkspace(), workspaceControllers.CreateWorkspace)

	wsGroup.Get("/:workspaceId", middleware.RequirePermission(acl.WorkspaceRead), middleware.RequireWorkspaceAccess, workspaceControllers.GetWorkspace)
	wsGroup.Get("/:workspaceId/users", middleware.RequirePermission(acl.WorkspaceRead), middleware.RequireWorkspaceAccess, workspaceControllers.WorkspaceUsers)
	wsGroup.Patch("/:workspaceId/users/:userId", middleware.RequirePermission(acl.WorkspaceUpdate), middleware.RequireWorkspaceAccess, workspaceControllers.AddUserToWorkspace)
	wsGroup.Delete("/:workspaceId/users/:userId", middleware.RequirePermission(acl.WorkspaceUpdate), middleware.RequireWorkspaceAccess, workspaceControllers.RemoveUserFromWorkspace)
	wsGroup.Patch("/:workspaceId/proposal", middleware.RequirePermission(acl.WorkspaceUpdate), middleware.RequireWorkspaceAccess, workspaceValidators.UpdateProposal(), workspaceControllers.UpdateProposal)
	wsGroup.Delete("/:workspaceId", middleware.RequirePermission(acl.WorkspaceDelete), workspaceControllers.DeleteWorkspace)
}
