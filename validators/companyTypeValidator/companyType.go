package companyTypeValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"crm/middleware"
)

// CreateCompanyType validator middleware
func CreateCompanyType() fiber.Handler {
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
			errors["code"] = "Company type code must be at least 2 characters long!"
		}
		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Company type name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompanyType", reqData)
		return c.Next()
	}
}

// UpdateCompanyType validator middleware
func UpdateCompanyType() fiber.Handler {
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
			errors["code"] = "Company type code must be at least 2 characters long!"
		}
		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Company type name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompanyTypeUpdate", reqData)
		return c.Next()
	}
}
