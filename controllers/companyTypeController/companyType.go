package companyTypeController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crm/database"
	"crm/middleware"
	"crm/models"
)

func CompanyTypeList(c *fiber.Ctx) error {
	var types []models.CompanyType
	if err := database.Database.Db.Order("code").Find(&types).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch company types!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company type list.", types)
}

func GetCompanyType(c *fiber.Ctx) error {
	var companyType models.CompanyType
	if err := database.Database.Db.First(&companyType, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company type not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company type.", companyType)
}

func CreateCompanyType(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompanyType").(*struct {
		Code string `json:"code"`
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("code = ?", reqData.Code).First(&models.CompanyType{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Company type code already exists!", nil)
	}

	companyType := models.CompanyType{Code: reqData.Code, Name: reqData.Name}
	if err := db.Create(&companyType).Error; err != nil {
		log.Printf("Error creating company type: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company type!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company type created.", companyType)
}

func UpdateCompanyType(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompanyTypeUpdate").(*struct {
		Code *string `json:"code"`
		Name *string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var companyType models.CompanyType
	if err := db.First(&companyType, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company type not found!", nil)
	}

	if reqData.Code != nil {
		companyType.Code = *reqData.Code
	}
	if reqData.Name != nil {
		companyType.Name = *reqData.Name
	}

	if err := db.Save(&companyType).Error; err != nil {
		log.Printf("Error updating company type: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company type!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company type updated.", companyType)
}

func DeleteCompanyType(c *fiber.Ctx) error {
	db := database.Database.Db

	var companyType models.CompanyType
	if err := db.First(&companyType, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company type not found!", nil)
	}

	if err := db.Delete(&companyType).Error; err != nil {
		log.Printf("Error deleting company type: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company type!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company type deleted.", nil)
}
