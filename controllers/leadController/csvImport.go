package leadController

import (
	"encoding/csv"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"crm/database"
	"crm/middleware"
	"crm/models"
)

// Accepted CSV header names, lowercased.
var csvColumns = map[string]string{
	"company name": "name",
	"name":         "name",
	"website":      "site",
	"site":         "site",
	"phone":        "phone",
	"phone number": "phone",
	"email":        "email",
}

// ImportLeadsCSV bulk-creates leads from an uploaded CSV file. Rows without a
// company name are skipped; "-" cells count as empty.
func ImportLeadsCSV(c *fiber.Ctx) error {
	workspaceID := c.Params("workspaceId")
	userID, _ := c.Locals("userId").(string)

	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", workspaceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file is required!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded CSV: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read CSV file!", nil)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // rows may have trailing columns

	header, err := reader.Read()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file must contain a header row!", nil)
	}

	// Map column index -> field
	fields := make(map[int]string, len(header))
	for i, col := range header {
		if field, ok := csvColumns[strings.ToLower(strings.TrimSpace(col))]; ok {
			fields[i] = field
		}
	}
	hasName := false
	for _, f := range fields {
		if f == "name" {
			hasName = true
		}
	}
	if !hasName {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV header must contain a company name column!", nil)
	}

	imported := 0
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		lead := models.Lead{WorkspaceID: workspace.ID, ResponsibleID: &userID}
		for i, value := range record {
			field, ok := fields[i]
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "-" {
				value = ""
			}
			switch field {
			case "name":
				lead.Name = value
			case "site":
				lead.Site = value
			case "phone":
				lead.PhoneNumber = value
			case "email":
				lead.Email = value
			}
		}

		if lead.Name == "" {
			skipped++
			continue
		}

		if err := db.Create(&lead).Error; err != nil {
			log.Printf("Error importing lead row: %v", err)
			skipped++
			continue
		}
		imported++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "CSV import finished.", fiber.Map{
		"imported": imported,
		"skipped":  skipped,
	})
}
