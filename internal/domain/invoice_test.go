package domain

import "testing"

func TestInvoiceDraftAmount(t *testing.T) {
	discount := 10.0
	cases := []struct {
		name  string
		draft InvoiceDraft
		want  float64
	}{
		{name: "subtotal plus tax", draft: InvoiceDraft{Subtotal: 100, Tax: 8.5}, want: 108.5},
		{name: "discount applied", draft: InvoiceDraft{Subtotal: 100, Tax: 8.5, Discount: &discount}, want: 98.5},
		{name: "zero invoice", draft: InvoiceDraft{}, want: 0},
	}

	for _, tt := range cases {
		if got := tt.draft.Amount(); got != tt.want {
			t.Errorf("%s: Amount() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPaymentStatusValid(t *testing.T) {
	for _, status := range []PaymentStatus{PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded} {
		if !status.Valid() {
			t.Errorf("Valid(%q) = false, want true", status)
		}
	}
	if PaymentStatus("overdue").Valid() {
		t.Error("Valid(overdue) = true, want false")
	}
}
