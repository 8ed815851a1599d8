package domain

import "time"

// PaymentStatus enumerates invoice payment states.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Valid reports whether the value is one of the enumerated payment states.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Invoice bills a customer, optionally for a specific repair ticket.
type Invoice struct {
	ID            string
	CustomerID    string
	TicketID      *string
	Subtotal      float64
	Tax           float64
	Discount      *float64
	Total         float64
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceDraft is a validated invoice record ready for persistence.
type InvoiceDraft struct {
	CustomerID    string
	TicketID      *string
	Subtotal      float64
	Tax           float64
	Discount      *float64
	PaymentStatus PaymentStatus
}

// Amount returns the payable total: subtotal plus tax minus discount.
func (d InvoiceDraft) Amount() float64 {
	total := d.Subtotal + d.Tax
	if d.Discount != nil {
		total -= *d.Discount
	}
	return total
}
