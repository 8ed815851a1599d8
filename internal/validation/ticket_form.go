package validation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/repairdeck/repairshop-service/internal/domain"
	apperrors "github.com/repairdeck/repairshop-service/pkg/util"
)

// Field error codes reported by form validation.
const (
	CodeRequired    = "required"
	CodeInvalidEnum = "invalid_enum"
	CodeNotNumeric  = "not_numeric"
	CodeNegative    = "negative"
)

// FieldErrors maps a field name to its error code. Fields are validated
// independently so every problem is reported in one pass.
type FieldErrors map[string]string

// HasErrors reports whether any field failed.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsDomainError converts the field map into the transport-level error shape.
func (fe FieldErrors) AsDomainError() error {
	details := make(map[string]any, len(fe))
	for field, code := range fe {
		details[field] = code
	}
	return apperrors.NewValidationError("invalid input", details)
}

// TicketForm carries the raw string values of a ticket create/edit form.
type TicketForm struct {
	CustomerID       string
	DeviceType       string
	DeviceModel      string
	SerialNumber     string
	IssueDescription string
	Diagnosis        string
	Solution         string
	Status           string
	TechnicianID     string
	EstimatedCost    string
	FinalCost        string
}

// ValidateCreate validates a creation form. The submitted status is ignored:
// new tickets always start pending.
func (f TicketForm) ValidateCreate() (domain.TicketDraft, FieldErrors) {
	draft, errs := f.validateCommon()
	draft.Status = domain.TicketStatusPending
	return draft, errs
}

// ValidateUpdate validates an edit form. Status is required and must be one
// of the four lifecycle values.
func (f TicketForm) ValidateUpdate() (domain.TicketDraft, FieldErrors) {
	draft, errs := f.validateCommon()
	status := strings.TrimSpace(f.Status)
	switch {
	case status == "":
		errs["status"] = CodeRequired
	case !domain.TicketStatus(status).Valid():
		errs["status"] = CodeInvalidEnum
	default:
		draft.Status = domain.TicketStatus(status)
	}
	return draft, errs
}

func (f TicketForm) validateCommon() (domain.TicketDraft, FieldErrors) {
	errs := FieldErrors{}
	draft := domain.TicketDraft{}

	draft.CustomerID = strings.TrimSpace(f.CustomerID)
	if draft.CustomerID == "" {
		errs["customer_id"] = CodeRequired
	}

	deviceType := strings.TrimSpace(f.DeviceType)
	switch {
	case deviceType == "":
		errs["device_type"] = CodeRequired
	case !domain.DeviceType(deviceType).Valid():
		errs["device_type"] = CodeInvalidEnum
	default:
		draft.DeviceType = domain.DeviceType(deviceType)
	}

	draft.DeviceModel = strings.TrimSpace(f.DeviceModel)
	if draft.DeviceModel == "" {
		errs["device_model"] = CodeRequired
	}

	draft.IssueDescription = strings.TrimSpace(f.IssueDescription)
	if draft.IssueDescription == "" {
		errs["issue_description"] = CodeRequired
	}

	draft.SerialNumber = optionalString(f.SerialNumber)
	draft.Diagnosis = optionalString(f.Diagnosis)
	draft.Solution = optionalString(f.Solution)
	draft.TechnicianID = optionalString(f.TechnicianID)

	draft.EstimatedCost = optionalCost(f.EstimatedCost, "estimated_cost", errs)
	draft.FinalCost = optionalCost(f.FinalCost, "final_cost", errs)

	return draft, errs
}

// optionalString normalizes empty form input to nil.
func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// optionalCost parses an optional money field. Empty input means "no cost
// specified" and normalizes to nil.
func optionalCost(raw, field string, errs FieldErrors) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		errs[field] = CodeNotNumeric
		return nil
	}
	if parsed < 0 {
		errs[field] = CodeNegative
		return nil
	}
	return &parsed
}
