package validation

import "testing"

func TestCustomerFormValidate(t *testing.T) {
	cases := []struct {
		name     string
		form     CustomerForm
		wantErrs map[string]string
	}{
		{
			name: "valid minimal",
			form: CustomerForm{FirstName: "John", LastName: "Doe", Phone: "555-0100"},
		},
		{
			name:     "missing everything",
			form:     CustomerForm{},
			wantErrs: map[string]string{"first_name": CodeRequired, "last_name": CodeRequired, "phone": CodeRequired},
		},
		{
			name:     "bad email",
			form:     CustomerForm{FirstName: "John", LastName: "Doe", Phone: "555-0100", Email: "not-an-email"},
			wantErrs: map[string]string{"email": CodeInvalidEmail},
		},
		{
			name: "optionals normalize to nil",
			form: CustomerForm{FirstName: "John", LastName: "Doe", Phone: "555-0100", Email: "", Address: "  ", Notes: ""},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			draft, errs := tt.form.Validate()
			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("errors = %v, want %v", errs, tt.wantErrs)
			}
			for field, code := range tt.wantErrs {
				if errs[field] != code {
					t.Errorf("%s: error = %q, want %q", field, errs[field], code)
				}
			}
			if len(tt.wantErrs) == 0 && tt.form.Address == "  " && draft.Address != nil {
				t.Errorf("address = %v, want nil", *draft.Address)
			}
		})
	}
}
