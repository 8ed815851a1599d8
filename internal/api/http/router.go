package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairdeck/repairshop-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tickets     *handlers.TicketsHandler
	Customers   *handlers.CustomersHandler
	Inventory   *handlers.InventoryHandler
	Invoices    *handlers.InvoicesHandler
	Technicians *handlers.TechniciansHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api/v1")

	tickets := api.Group("/tickets")
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Put("/:id", cfg.Tickets.UpdateTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)

	customers := api.Group("/customers")
	customers.Post("/", cfg.Customers.CreateCustomer)
	customers.Get("/", cfg.Customers.ListCustomers)
	customers.Get("/:id", cfg.Customers.GetCustomer)
	customers.Put("/:id", cfg.Customers.UpdateCustomer)
	customers.Delete("/:id", cfg.Customers.DeleteCustomer)

	inventory := api.Group("/inventory")
	inventory.Post("/", cfg.Inventory.CreateItem)
	inventory.Get("/", cfg.Inventory.ListItems)
	inventory.Get("/:id", cfg.Inventory.GetItem)
	inventory.Put("/:id", cfg.Inventory.UpdateItem)
	inventory.Delete("/:id", cfg.Inventory.DeleteItem)

	invoices := api.Group("/invoices")
	invoices.Post("/", cfg.Invoices.CreateInvoice)
	invoices.Get("/", cfg.Invoices.ListInvoices)
	invoices.Get("/:id", cfg.Invoices.GetInvoice)
	invoices.Put("/:id", cfg.Invoices.UpdateInvoice)
	invoices.Delete("/:id", cfg.Invoices.DeleteInvoice)

	technicians := api.Group("/technicians")
	technicians.Get("/", cfg.Technicians.ListTechnicians)
	technicians.Get("/:id", cfg.Technicians.GetTechnician)
}
