package userController

import (
	"github.com/gofiber/fiber/v2"

	"crm/database"
	"crm/middleware"
	"crm/models"
)

// Me returns the authenticated user with their role.
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Current user.", user)
}

// UserList returns all users. Guarded by users.manage.
func UserList(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Preload("Role").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", users)
}
