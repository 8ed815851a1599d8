package domain

import "time"

// Customer is a person the shop repairs devices for.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	Address   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerDraft is a validated customer record ready for persistence.
type CustomerDraft struct {
	FirstName string
	LastName  string
	Phone     string
	Email     *string
	Address   *string
	Notes     *string
}
