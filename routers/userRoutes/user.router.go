package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	"crm/acl"
	userControllers "crm/controllers/userControllers"
	"crm/middleware"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware)

	userGroup.Get("/me", userControllers.Me)
	userGroup.Get("/", middleware.RequirePermission(acl.UsersManage), userControllers.UserList)
}
