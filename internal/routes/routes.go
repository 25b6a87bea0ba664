package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"learninghub/internal/config"
	"learninghub/internal/handlers"
	"learninghub/internal/middleware"
	"learninghub/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	contentHandler *handlers.ContentHandler,
	creditHandler *handlers.CreditHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth endpoints are public but get a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Authenticated routes: valid token plus an active account
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.LoadUser(db))

	protected.Get("/users/me", userHandler.Me)

	protected.Get("/content", contentHandler.Feed)
	protected.Get("/content/saved", contentHandler.Saved)
	protected.Post("/content/save", contentHandler.Save)
	protected.Post("/content/share", contentHandler.Share)
	protected.Post("/content/report", contentHandler.Report)

	protected.Get("/credits/history", creditHandler.History)
	protected.Post("/credits/spend", creditHandler.Spend)

	// Admin panel
	admin := protected.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/dashboard-stats", adminHandler.DashboardStats)
	admin.Get("/reports", adminHandler.ListReports)
	admin.Patch("/reports/:id/approve", adminHandler.ApproveReport)
	admin.Patch("/reports/:id/reject", adminHandler.RejectReport)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id", adminHandler.UpdateUser)
	admin.Patch("/users/:id/toggle-status", adminHandler.ToggleUserStatus)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/stats/content", adminHandler.ContentStats)
	admin.Get("/stats/credits", adminHandler.CreditStats)
}
