package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	controller "leadtrack/controllers"
	"leadtrack/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, log *logrus.Logger) {
	// Initialize controllers with their respective loggers
	authController := controller.NewAuthController(log.WithField("component", "auth"))
	companyController := controller.NewCompanyController(db, log.WithField("component", "company"))
	prospectController := controller.NewProspectController(db, log.WithField("component", "prospect"))
	dashboardController := controller.NewDashboardController(db, log.WithField("component", "dashboard"))

	requestLogger := logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	})

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Session endpoints (no session required)
	app.Post("/login", requestLogger, middleware.LoginRateLimiter(), authController.Login)
	app.Post("/logout", requestLogger, authController.Logout)

	// Company routes
	company := app.Group("/companies", requestLogger, middleware.Protected())
	company.Get("/", companyController.GetCompanies)
	company.Post("/", companyController.CreateCompany)
	company.Get("/:id", companyController.GetCompany)
	company.Put("/:id", companyController.UpdateCompany)
	company.Delete("/:id", companyController.DeleteCompany)

	// Prospect routes. /export is registered before /:id so it wins the match.
	prospect := app.Group("/prospects", requestLogger, middleware.Protected())
	prospect.Get("/", prospectController.GetProspects)
	prospect.Post("/", prospectController.CreateProspect)
	prospect.Get("/export", prospectController.ExportProspects)
	prospect.Get("/:id", prospectController.GetProspect)
	prospect.Put("/:id", prospectController.UpdateProspect)
	prospect.Delete("/:id", prospectController.DeleteProspect)

	// Dashboard routes
	dashboard := app.Group("/dashboard", requestLogger, middleware.Protected())
	dashboard.Get("/stats", dashboardController.GetDashboardStats)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
