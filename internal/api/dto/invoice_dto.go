package dto

import (
	"time"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// InvoiceRequest payload for invoice create/edit. Total is derived server
// side from subtotal, tax and discount.
type InvoiceRequest struct {
	CustomerID    string   `json:"customer_id"`
	TicketID      *string  `json:"ticket_id"`
	Subtotal      float64  `json:"subtotal"`
	Tax           float64  `json:"tax"`
	Discount      *float64 `json:"discount"`
	PaymentStatus string   `json:"payment_status"`
}

// InvoiceResponse is the persisted invoice shape.
type InvoiceResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	TicketID      *string              `json:"ticket_id"`
	Subtotal      float64              `json:"subtotal"`
	Tax           float64              `json:"tax"`
	Discount      *float64             `json:"discount"`
	Total         float64              `json:"total"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// TechnicianResponse is the staff profile shape.
type TechnicianResponse struct {
	ID        string                 `json:"id"`
	FirstName *string                `json:"first_name"`
	LastName  *string                `json:"last_name"`
	Email     *string                `json:"email"`
	Phone     *string                `json:"phone"`
	Role      *domain.TechnicianRole `json:"role"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
