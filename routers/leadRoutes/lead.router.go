package leadRoutes

import (
	"github.com/gofiber/fiber/v2"

	"crm/acl"
	leadControllers "crm/controllers/leadController"
	"crm/middleware"
	leadValidators "crm/validators/leadValidator"
)

// SetupLeadRoutes wires the workspace-scoped lead endpoints. Every route runs
// the permission gate first and the workspace gate second, so the workspace
// gate reuses the snapshot the permission gate resolved.
func SetupLeadRoutes(app *fiber.App) {
	// Cross-workspace listing; not workspace-scoped, so no workspace gate.
	app.Get("/leads", middleware.JWTMiddleware,
		middleware.RequirePermission(acl.LeadRead, acl.LeadManage, acl.LeadFullRead),
		leadControllers.AllLeads)

	leadGroup := app.Group("/workspaces/:workspaceId/leads", middleware.JWTMiddleware)

	leadGroup.Post("/", middleware.RequirePermission(acl.LeadCreate), middleware.RequireWorkspaceAccess, leadValidators.CreateLead(), leadControllers.CreateLead)
	leadGroup.Post("/import-csv", middleware.RequirePermission(acl.LeadManage), middleware.RequireWorkspaceAccess, leadControllers.ImportLeadsCSV)

	// Readable with either lead.read or lead.manage
	leadGroup.Get("/", middleware.RequirePermission(acl.LeadRead, acl.LeadManage), middleware.RequireWorkspaceAccess, leadControllers.LeadList)
	leadGroup.Get("/me", middleware.RequirePermission(acl.LeadRead), middleware.RequireWorkspaceAccess, leadControllers.MyLeads)
	leadGroup.Get("/:id", middleware.RequirePermission(acl.LeadRead), middleware.RequireWorkspaceAccess, leadControllers.GetLead)

	leadGroup.Patch("/:id", middleware.RequirePermission(acl.LeadUpdate), middleware.RequireWorkspaceAccess, leadValidators.UpdateLead(), leadControllers.UpdateLead)
	leadGroup.Patch("/:id/status", middleware.RequirePermission(acl.LeadStatus), middleware.RequireWorkspaceAccess, leadValidators.UpdateLeadStatus(), leadControllers.UpdateLeadStatus)
	leadGroup.Delete("/:id", middleware.RequirePermission(acl.LeadDelete), middleware.RequireWorkspaceAccess, leadControllers.DeleteLead)

	leadGroup.Post("/:id/proposal", middleware.RequirePermission(acl.MailSend), middleware.RequireWorkspaceAccess, leadControllers.SendProposal)
}
