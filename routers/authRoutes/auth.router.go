package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "crm/controllers/auth"
	authValidators "crm/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/send/code", authValidators.SendCode(), authControllers.SendLoginCode)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
