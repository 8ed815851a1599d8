package validation

import (
	"strings"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

const CodeInvalidEmail = "invalid_email"

// CustomerForm carries the raw string values of a customer create/edit form.
type CustomerForm struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	Notes     string
}

// Validate checks the customer creation invariant: names and phone non-empty.
func (f CustomerForm) Validate() (domain.CustomerDraft, FieldErrors) {
	errs := FieldErrors{}
	draft := domain.CustomerDraft{}

	draft.FirstName = strings.TrimSpace(f.FirstName)
	if draft.FirstName == "" {
		errs["first_name"] = CodeRequired
	}
	draft.LastName = strings.TrimSpace(f.LastName)
	if draft.LastName == "" {
		errs["last_name"] = CodeRequired
	}
	draft.Phone = strings.TrimSpace(f.Phone)
	if draft.Phone == "" {
		errs["phone"] = CodeRequired
	}

	draft.Email = optionalString(f.Email)
	if draft.Email != nil && !strings.Contains(*draft.Email, "@") {
		errs["email"] = CodeInvalidEmail
	}
	draft.Address = optionalString(f.Address)
	draft.Notes = optionalString(f.Notes)

	return draft, errs
}
