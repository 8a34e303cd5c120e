package leadValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"crm/middleware"
	"crm/models"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// CreateLead validator middleware
func CreateLead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string  `json:"name"`
			Email         string  `json:"email"`
			PhoneNumber   string  `json:"phoneNumber"`
			Site          string  `json:"site"`
			Comment       string  `json:"comment"`
			CompanyTypeID *string `json:"companyTypeId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Lead name is required!"
		}
		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLead", reqData)
		return c.Next()
	}
}

// UpdateLead validator middleware
func UpdateLead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          *string `json:"name"`
			Email         *string `json:"email"`
			PhoneNumber   *string `json:"phoneNumber"`
			Site          *string `json:"site"`
			Comment       *string `json:"comment"`
			CallType      *string `json:"callType"`
			CompanyTypeID *string `json:"companyTypeId"`
			ResponsibleID *string `json:"responsibleId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Lead name cannot be empty!"
		}
		if reqData.Email != nil && *reqData.Email != "" && !isValidEmail(*reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.CallType != nil && !models.ValidCallType(*reqData.CallType) {
			errors["callType"] = "Invalid call type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLeadUpdate", reqData)
		return c.Next()
	}
}

// UpdateLeadStatus validator middleware
func UpdateLeadStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.ValidLeadStatus(reqData.Status) {
			errors["status"] = "Invalid lead status!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLeadStatus", reqData)
		return c.Next()
	}
}
