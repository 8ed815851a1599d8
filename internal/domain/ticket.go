package domain

import "time"

// DeviceType enumerates the kinds of devices the shop accepts.
type DeviceType string

const (
	DevicePhone   DeviceType = "phone"
	DeviceTablet  DeviceType = "tablet"
	DeviceLaptop  DeviceType = "laptop"
	DeviceDesktop DeviceType = "desktop"
	DeviceOther   DeviceType = "other"
)

// Valid reports whether the value is one of the enumerated device types.
func (d DeviceType) Valid() bool {
	switch d {
	case DevicePhone, DeviceTablet, DeviceLaptop, DeviceDesktop, DeviceOther:
		return true
	}
	return false
}

// TicketStatus enumerates lifecycle states for repair tickets.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusCompleted  TicketStatus = "completed"
	TicketStatusCancelled  TicketStatus = "cancelled"
)

// Valid reports whether the value is one of the four lifecycle states.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusCompleted, TicketStatusCancelled:
		return true
	}
	return false
}

// StatusClass is the display classification of a ticket status.
type StatusClass string

const (
	StatusClassNeutral StatusClass = "neutral"
	StatusClassInfo    StatusClass = "info"
	StatusClassSuccess StatusClass = "success"
	StatusClassDanger  StatusClass = "danger"
)

// Class maps a status to its display classification. The mapping carries no
// transition semantics; any status may replace any other through the edit path.
func (s TicketStatus) Class() StatusClass {
	switch s {
	case TicketStatusInProgress:
		return StatusClassInfo
	case TicketStatusCompleted:
		return StatusClassSuccess
	case TicketStatusCancelled:
		return StatusClassDanger
	default:
		return StatusClassNeutral
	}
}

// RepairTicket is the aggregate for a single device repair.
type RepairTicket struct {
	ID               string
	CustomerID       string
	DeviceType       DeviceType
	DeviceModel      string
	SerialNumber     *string
	IssueDescription string
	Diagnosis        *string
	Solution         *string
	Status           TicketStatus
	TechnicianID     *string
	EstimatedCost    *float64
	FinalCost        *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TicketDraft is a validated, normalized ticket record ready for persistence.
// Optional fields are nil when the submitted form left them empty.
type TicketDraft struct {
	CustomerID       string
	DeviceType       DeviceType
	DeviceModel      string
	SerialNumber     *string
	IssueDescription string
	Diagnosis        *string
	Solution         *string
	Status           TicketStatus
	TechnicianID     *string
	EstimatedCost    *float64
	FinalCost        *float64
}

// CustomerRef is the subset of customer fields joined onto ticket listings.
type CustomerRef struct {
	FirstName string
	LastName  string
	Phone     string
}

// TicketWithCustomer is the view model for a ticket joined with its owner.
type TicketWithCustomer struct {
	RepairTicket
	Customer CustomerRef
}
