package companyTypeRoutes

import (
	"github.com/gofiber/fiber/v2"

	"crm/acl"
	companyTypeControllers "crm/controllers/companyTypeController"
	"crm/middleware"
	companyTypeValidators "crm/validators/companyTypeValidator"
)

func SetupCompanyTypeRoutes(app *fiber.App) {
	ctGroup := app.Group("/company-types", middleware.JWTMiddleware)

	ctGroup.Get("/", middleware.RequirePermission(acl.CompanyTypeRead), companyTypeControllers.CompanyTypeList)
	ctGroup.Get("/:id", middleware.RequirePermission(acl.CompanyTypeRead), companyTypeControllers.GetCompanyType)
	ctGroup.Post("/", middleware.RequirePermission(acl.CompanyTypeCreate), companyTypeValidators.CreateCompanyType(), companyTypeControllers.CreateCompanyType)
	ctGroup.Patch("/:id", middleware.RequirePermission(acl.CompanyTypeUpdate), companyTypeValidators.UpdateCompanyType(), companyTypeControllers.UpdateCompanyType)
	ctGroup.Delete("/:id", middleware.RequirePermission(acl.CompanyTypeDelete), companyTypeControllers.DeleteCompanyType)
}
