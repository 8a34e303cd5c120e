package main

import (
	"crm/config"
	"crm/database"
	aclRoutes "crm/routers/aclRoutes"
	authRoutes "crm/routers/authRoutes"
	companyTypeRoutes "crm/routers/companyTypeRoutes"
	leadRoutes "crm/routers/leadRoutes"
	userRoutes "crm/routers/userRoutes"
	workspaceRoutes "crm/routers/workspaceRoutes"
	"crm/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	cleanup := utils.InitializeCleanupScheduler()
	defer cleanup.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	aclRoutes.SetupAclRoutes(app)
	workspaceRoutes.SetupWorkspaceRoutes(app)
	companyTypeRoutes.SetupCompanyTypeRoutes(app)
	leadRoutes.SetupLeadRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
