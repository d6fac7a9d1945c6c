package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/delivery-ops/internal/api/http/handlers"
	"github.com/spec-kit/delivery-ops/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Branches       *handlers.BranchesHandler
	Agents         *handlers.AgentsHandler
	Customers      *handlers.CustomersHandler
	Deliveries     *handlers.DeliveriesHandler
	Staff          *handlers.StaffHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	if cfg.AuthMiddleware != nil {
		authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	}

	api.Get("/dashboard/metrics", cfg.Reports.Metrics)

	api.Get("/branches", cfg.Branches.List)
	api.Post("/branches", cfg.Branches.Create)
	api.Get("/branches/:id", cfg.Branches.Get)

	api.Get("/agents", cfg.Agents.List)
	api.Post("/agents", cfg.Agents.Create)
	api.Get("/agents/:id", cfg.Agents.Get)
	api.Put("/agents/:id", cfg.Agents.Update)
	api.Delete("/agents/:id", cfg.Agents.Delete)

	api.Get("/customers", cfg.Customers.List)
	api.Post("/customers", cfg.Customers.Create)
	api.Get("/customers/:id", cfg.Customers.Get)

	api.Get("/deliveries", cfg.Deliveries.List)
	api.Post("/deliveries", cfg.Deliveries.Create)
	api.Get("/deliveries/search/:query", cfg.Deliveries.Search)
	api.Get("/deliveries/:id", cfg.Deliveries.Get)
	api.Put("/deliveries/:id", cfg.Deliveries.Update)
	api.Delete("/deliveries/:id", cfg.Deliveries.Delete)

	api.Get("/staff", cfg.Staff.ListStaff)
	api.Post("/staff", cfg.Staff.CreateStaff)
	api.Get("/staff/:id", cfg.Staff.GetStaff)
	api.Put("/staff/:id", cfg.Staff.UpdateStaff)

	api.Get("/leave-requests", cfg.Staff.ListLeaveRequests)
	api.Post("/leave-requests", cfg.Staff.CreateLeaveRequest)
	api.Put("/leave-requests/:id", cfg.Staff.UpdateLeaveRequest)

	api.Get("/attendance", cfg.Staff.ListAttendance)
	api.Post("/attendance", cfg.Staff.CreateAttendance)
	api.Put("/attendance/:id", cfg.Staff.UpdateAttendance)

	api.Get("/reports/summary", cfg.Reports.Summary)
	api.Get("/reports/deliveries.xlsx", cfg.Reports.ExportDeliveries)
}
