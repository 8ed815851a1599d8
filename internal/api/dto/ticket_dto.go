package dto

import (
	"time"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// TicketRequest carries raw form values for ticket create/edit. Every field
// arrives as a string, exactly as a form control submits it; the validator
// owns typing and normalization.
type TicketRequest struct {
	CustomerID       string `json:"customer_id"`
	DeviceType       string `json:"device_type"`
	DeviceModel      string `json:"device_model"`
	SerialNumber     string `json:"serial_number"`
	IssueDescription string `json:"issue_description"`
	Diagnosis        string `json:"diagnosis"`
	Solution         string `json:"solution"`
	Status           string `json:"status"`
	TechnicianID     string `json:"technician_id"`
	EstimatedCost    string `json:"estimated_cost"`
	FinalCost        string `json:"final_cost"`
}

// TicketResponse is the persisted ticket shape.
type TicketResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id"`
	DeviceType       domain.DeviceType   `json:"device_type"`
	DeviceModel      string              `json:"device_model"`
	SerialNumber     *string             `json:"serial_number"`
	IssueDescription string              `json:"issue_description"`
	Diagnosis        *string             `json:"diagnosis"`
	Solution         *string             `json:"solution"`
	Status           domain.TicketStatus `json:"status"`
	StatusClass      domain.StatusClass  `json:"status_class"`
	TechnicianID     *string             `json:"technician_id"`
	EstimatedCost    *float64            `json:"estimated_cost"`
	FinalCost        *float64            `json:"final_cost"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// TicketViewResponse flattens a ticket with its owning customer for listings
// and detail views.
type TicketViewResponse struct {
	TicketResponse
	CustomerFirstName string `json:"customer_first_name"`
	CustomerLastName  string `json:"customer_last_name"`
	CustomerPhone     string `json:"customer_phone"`
}
