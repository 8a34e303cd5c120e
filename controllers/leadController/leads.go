package leadController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crm/database"
	"crm/middleware"
	"crm/models"
	"crm/utils"
)

func CreateLead(c *fiber.Ctx) error {
	workspaceID := c.Params("workspaceId")
	userID, _ := c.Locals("userId").(string)

	reqData, ok := c.Locals("validatedLead").(*struct {
		Name          string  `json:"name"`
		Email         string  `json:"email"`
		PhoneNumber   string  `json:"phoneNumber"`
		Site          string  `json:"site"`
		Comment       string  `json:"comment"`
		CompanyTypeID *string `json:"companyTypeId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", workspaceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}

	if reqData.CompanyTypeID != nil {
		if err := db.First(&models.CompanyType{}, "id = ?", *reqData.CompanyTypeID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company type not found!", nil)
		}
	}

	lead := models.Lead{
		Name:          reqData.Name,
		Email:         reqData.Email,
		PhoneNumber:   reqData.PhoneNumber,
		Site:          reqData.Site,
		Comment:       reqData.Comment,
		CompanyTypeID: reqData.CompanyTypeID,
		WorkspaceID:   workspace.ID,
		ResponsibleID: &userID,
	}

	if err := db.Create(&lead).Error; err != nil {
		log.Printf("Error creating lead: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lead!", nil)
	}

	utils.NotifyLeadEvent(utils.LeadEvent{
		Event:       "lead.created",
		LeadID:      lead.ID,
		WorkspaceID: workspace.ID,
		ActorID:     userID,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lead created.", lead)
}

// AllLeads returns leads across every workspace. Reachable with lead.read,
// lead.manage or lead.full-read.
func AllLeads(c *fiber.Ctx) error {
	var leads []models.Lead
	err := database.Database.Db.
		Preload("CompanyType").
		Preload("Workspace").
		Preload("Responsible").
		Find(&leads).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leads!", nil)
	}

	for i := range leads {
		leads[i].Responsible.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead list.", leads)
}

// LeadList returns every lead of the workspace. Reachable with lead.read or
// lead.manage.
func LeadList(c *fiber.Ctx) error {
	var leads []models.Lead
	err := database.Database.Db.
		Preload("CompanyType").
		Preload("Responsible").
		Where("workspace_id = ?", c.Params("workspaceId")).
		Find(&leads).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leads!", nil)
	}

	for i := range leads {
		leads[i].Responsible.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead list.", leads)
}

// MyLeads returns the caller's assigned leads in the workspace.
func MyLeads(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var leads []models.Lead
	err := database.Database.Db.
		Preload("CompanyType").
		Where("workspace_id = ? AND responsible_id = ?", c.Params("workspaceId"), userID).
		Find(&leads).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leads!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My leads.", leads)
}

func GetLead(c *fiber.Ctx) error {
	var lead models.Lead
	err := database.Database.Db.
		Preload("CompanyType").
		Preload("Responsible").
		Where("workspace_id = ?", c.Params("workspaceId")).
		First(&lead, "id = ?", c.Params("id")).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lead not found!", nil)
	}

	lead.Responsible.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead.", lead)
}

func UpdateLead(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLeadUpdate").(*struct {
		Name          *string `json:"name"`
		Email         *string `json:"email"`
		PhoneNumber   *string `json:"phoneNumber"`
		Site          *string `json:"site"`
		Comment       *string `json:"comment"`
		CallType      *string `json:"callType"`
		CompanyTypeID *string `json:"companyTypeId"`
		ResponsibleID *string `json:"responsibleId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lead models.Lead
	if err := db.Where("workspace_id = ?", c.Params("workspaceId")).
		First(&lead, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lead not found!", nil)
	}

	if reqData.Name != nil {
		lead.Name = *reqData.Name
	}
	if reqData.Email != nil {
		lead.Email = *reqData.Email
	}
	if reqData.PhoneNumber != nil {
		lead.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.Site != nil {
		lead.Site = *reqData.Site
	}
	if reqData.Comment != nil {
		lead.Comment = *reqData.Comment
	}
	if reqData.CallType != nil {
		lead.CallType = *reqData.CallType
	}
	if reqData.CompanyTypeID != nil {
		if err := db.First(&models.CompanyType{}, "id = ?", *reqData.CompanyTypeID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company type not found!", nil)
		}
		lead.CompanyTypeID = reqData.CompanyTypeID
	}
	if reqData.ResponsibleID != nil {
		if err := db.First(&models.User{}, "id = ?", *reqData.ResponsibleID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		lead.ResponsibleID = reqData.ResponsibleID
	}

	if err := db.Save(&lead).Error; err != nil {
		log.Printf("Error updating lead: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lead!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead updated.", lead)
}

// UpdateLeadStatus moves a lead through the pipeline.
func UpdateLeadStatus(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	reqData, ok := c.Locals("validatedLeadStatus").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lead models.Lead
	if err := db.Where("workspace_id = ?", c.Params("workspaceId")).
		First(&lead, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lead not found!", nil)
	}

	lead.Status = reqData.Status
	if err := db.Save(&lead).Error; err != nil {
		log.Printf("Error updating lead status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lead status!", nil)
	}

	utils.NotifyLeadEvent(utils.LeadEvent{
		Event:       "lead.status-changed",
		LeadID:      lead.ID,
		WorkspaceID: lead.WorkspaceID,
		Status:      lead.Status,
		ActorID:     userID,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead status updated.", lead)
}

// DeleteLead soft-deletes a lead.
func DeleteLead(c *fiber.Ctx) error {
	db := database.Database.Db

	var lead models.Lead
	if err := db.Where("workspace_id = ?", c.Params("workspaceId")).
		First(&lead, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lead not found!", nil)
	}

	if err := db.Delete(&lead).Error; err != nil {
		log.Printf("Error deleting lead: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lead!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead deleted.", nil)
}

// SendProposal mails the workspace proposal document to the lead and marks
// the lead as proposal-sent.
func SendProposal(c *fiber.Ctx) error {
	db := database.Database.Db

	var lead models.Lead
	if err := db.Preload("Workspace").
		Where("workspace_id = ?", c.Params("workspaceId")).
		First(&lead, "id = ?", c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lead not found!", nil)
	}

	if lead.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lead has no email address!", nil)
	}
	if lead.Workspace.ProposalText == "" && lead.Workspace.ProposalHTML == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Workspace has no proposal configured!", nil)
	}

	err := utils.SendProposalEmail(lead.Email, lead.Name,
		"Proposal from "+lead.Workspace.Name,
		lead.Workspace.ProposalText, lead.Workspace.ProposalHTML)
	if err != nil {
		log.Printf("Error sending proposal to lead %s: %v", lead.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send proposal!", nil)
	}

	lead.Status = models.LeadStatusSendPS
	if err := db.Save(&lead).Error; err != nil {
		log.Printf("Error marking lead proposal-sent: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Proposal sent.", nil)
}
