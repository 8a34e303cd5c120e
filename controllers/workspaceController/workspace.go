package workspaceController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"crm/database"
	"crm/middleware"
	"crm/models"
)

func WorkspaceList(c *fiber.Ctx) error {
	var workspaces []models.Workspace
	if err := database.Database.Db.Find(&workspaces).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workspaces!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workspace list.", workspaces)
}

// MyWorkspaces lists the workspaces the caller is a member of.
func MyWorkspaces(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var memberships []models.WorkspaceMembership
	if err := database.Database.Db.Preload("Workspace").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workspaces!", nil)
	}

	workspaces := make([]fiber.Map, 0, len(memberships))
	for _, m := range memberships {
		if m.Workspace.ID == "" {
			continue
		}
		workspaces = append(workspaces, fiber.Map{
			"id":   m.Workspace.ID,
			"name": m.Workspace.Name,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My workspaces.", workspaces)
}

func GetWorkspace(c *fiber.Ctx) error {
	var workspace models.Workspace
	if err := database.Database.Db.First(&workspace, "id = ?", c.Params("workspaceId")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workspace.", workspace)
}

// WorkspaceUsers lists the members of a workspace.
func WorkspaceUsers(c *fiber.Ctx) error {
	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", c.Params("workspaceId")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}

	var memberships []models.WorkspaceMembership
	if err := db.Preload("User").Preload("User.Role").
		Where("workspace_id = ?", workspace.ID).
		Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workspace users!", nil)
	}

	users := make([]models.User, 0, len(memberships))
	for _, m := range memberships {
		if m.User.ID == "" {
			continue
		}
		m.User.Password = ""
		users = append(users, m.User)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workspace users.", users)
}

func CreateWorkspace(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	reqData, ok := c.Locals("validatedWorkspace").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	workspace := models.Workspace{Name: reqData.Name}
	if err := db.Create(&workspace).Error; err != nil {
		log.Printf("Error creating workspace: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workspace!", nil)
	}

	// The creator joins the workspace right away, otherwise anyone without
	// workspace.manage would create workspaces they cannot enter.
	membership := models.WorkspaceMembership{UserID: userID, WorkspaceID: workspace.ID}
	if err := db.Create(&membership).Error; err != nil {
		log.Printf("Error adding creator to workspace %s: %v", workspace.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workspace!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Workspace created.", workspace)
}

// AddUserToWorkspace creates a membership row; re-adding revives a
// soft-deleted one.
func AddUserToWorkspace(c *fiber.Ctx) error {
	workspaceID := c.Params("workspaceId")
	userID := c.Params("userId")

	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", workspaceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var existing models.WorkspaceMembership
	err := db.Unscoped().
		Where("user_id = ? AND workspace_id = ?", user.ID, workspace.ID).
		First(&existing).Error
	if err == nil {
		if !existing.DeletedAt.Valid {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already in this workspace!", nil)
		}
		// Revive the soft-deleted membership
		if err := db.Unscoped().Model(&existing).Update("deleted_at", nil).Error; err != nil {
			log.Printf("Error reviving membership: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add user to workspace!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User added to workspace.", nil)
	}

	membership := models.WorkspaceMembership{UserID: user.ID, WorkspaceID: workspace.ID}
	if err := db.Create(&membership).Error; err != nil {
		log.Printf("Error adding user to workspace: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add user to workspace!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User added to workspace.", nil)
}

// RemoveUserFromWorkspace soft-deletes the membership row.
func RemoveUserFromWorkspace(c *fiber.Ctx) error {
	workspaceID := c.Params("workspaceId")
	userID := c.Params("userId")

	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", workspaceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var membership models.WorkspaceMembership
	if err := db.Where("user_id = ? AND workspace_id = ?", user.ID, workspace.ID).
		First(&membership).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User is not in this workspace!", nil)
	}

	if err := db.Delete(&membership).Error; err != nil {
		log.Printf("Error removing user from workspace: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove user from workspace!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User removed from workspace.", nil)
}

// UpdateProposal stores the proposal document mailed to leads of this
// workspace.
func UpdateProposal(c *fiber.Ctx) error {
	workspaceID := c.Params("workspaceId")

	reqData, ok := c.Locals("validatedProposal").(*struct {
		Filename string `json:"filename"`
		Text     string `json:"text"`
		HTML     string `json:"html"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", workspaceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}

	workspace.ProposalFilename = reqData.Filename
	workspace.ProposalText = reqData.Text
	workspace.ProposalHTML = reqData.HTML

	if err := db.Save(&workspace).Error; err != nil {
		log.Printf("Error updating proposal: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update proposal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Proposal updated.", nil)
}

// DeleteWorkspace soft-deletes a workspace.
func DeleteWorkspace(c *fiber.Ctx) error {
	db := database.Database.Db

	var workspace models.Workspace
	if err := db.First(&workspace, "id = ?", c.Params("workspaceId")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workspace not found!", nil)
	}

	if err := db.Delete(&workspace).Error; err != nil {
		log.Printf("Error deleting workspace: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete workspace!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workspace deleted.", nil)
}
