package authController

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"crm/acl"
	"crm/config"
	"crm/database"
	"crm/middleware"
	"crm/models"
	"crm/utils"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// The first registered user becomes admin, everyone after that member.
	roleCode, err := acl.BootstrapRoleCode(db)
	if err != nil {
		log.Printf("Error resolving bootstrap role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	var role models.Role
	if err := db.First(&role, "code = ?", roleCode).Error; err != nil {
		log.Printf("Default role %q not seeded: %v", roleCode, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	newUser := models.User{
		FullName: reqData.FullName,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		RoleID:   role.ID,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.FullName)

	newUser.Password = ""
	newUser.Role = role

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// SendLoginCode mails a short-lived six digit code to a registered address.
func SendLoginCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendCode").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		// Same response as success so the endpoint cannot be used to probe
		// for registered addresses.
		return middleware.JsonResponse(c, fiber.StatusOK, true, "If the address is registered, a code has been sent.", nil)
	}

	code := utils.GenerateLoginCode()
	ttl := config.AppConfig.LoginCodeTTLMinutes

	loginCode := models.LoginCode{
		Email:     user.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(ttl) * time.Minute),
	}
	if err := db.Create(&loginCode).Error; err != nil {
		log.Printf("Error saving login code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send login code!", nil)
	}

	utils.SendLoginCodeEmail(user.Email, code, ttl)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the address is registered, a code has been sent.", nil)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Code     string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Role").Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Verify the mailed login code
	var loginCode models.LoginCode
	err := db.Where("email = ? AND code = ? AND used = ? AND expires_at > ?",
		user.Email, reqData.Code, false, time.Now()).
		Order("created_at DESC").
		First(&loginCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired login code!", nil)
		}
		log.Printf("Error checking login code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	loginCode.Used = true
	if err := db.Save(&loginCode).Error; err != nil {
		log.Printf("Error marking login code used: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role.Code, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}
