package events

import (
	"time"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketDeleted       EventType = "ticket_deleted"
	EventInvoiceCreated      EventType = "invoice_created"
	EventInventoryLowStock   EventType = "inventory_low_stock"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID    string            `json:"ticket_id"`
	CustomerID  string            `json:"customer_id"`
	DeviceType  domain.DeviceType `json:"device_type"`
	DeviceModel string            `json:"device_model"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	TicketID string `json:"ticket_id"`
}

// InvoiceCreatedPayload payload.
type InvoiceCreatedPayload struct {
	InvoiceID  string               `json:"invoice_id"`
	CustomerID string               `json:"customer_id"`
	TicketID   *string              `json:"ticket_id,omitempty"`
	Total      float64              `json:"total"`
	Status     domain.PaymentStatus `json:"status"`
}

// InventoryLowStockPayload payload.
type InventoryLowStockPayload struct {
	ItemID      string `json:"item_id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
