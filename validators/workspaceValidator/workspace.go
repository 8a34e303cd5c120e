package workspaceValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"crm/middleware"
)

// CreateWorkspace validator middleware
func CreateWorkspace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Workspace name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWorkspace", reqData)
		return c.Next()
	}
}

// UpdateProposal validator middleware
func UpdateProposal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Filename string `json:"filename"`
			Text     string `json:"text"`
			HTML     string `json:"html"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Text) == "" && strings.TrimSpace(reqData.HTML) == "" {
			errors["proposal"] = "Either text or html is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProposal", reqData)
		return c.Next()
	}
}
