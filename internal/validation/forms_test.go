package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	FullName string `json:"full_name" validate:"required,max=10"`
	Email    string `json:"email" validate:"required,email"`
	Website  string `json:"website" validate:"omitempty,url"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

func TestStructValid(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"", "555-010-0100", "+44 20 7946 0958", "(202) 555.0175"} {
		err := Struct(sampleForm{FullName: "Ada", Email: "ada@example.com", Phone: phone})
		assert.NoError(t, err, "phone %q", phone)
	}
}

func TestStructMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form sampleForm
		want string
	}{
		{
			name: "required uses json field name",
			form: sampleForm{Email: "ada@example.com"},
			want: "full_name is required",
		},
		{
			name: "email format",
			form: sampleForm{FullName: "Ada", Email: "not-an-email"},
			want: "email must be a valid email address",
		},
		{
			name: "max length",
			form: sampleForm{FullName: "a very long name", Email: "ada@example.com"},
			want: "full_name must be at most 10 characters",
		},
		{
			name: "url format",
			form: sampleForm{FullName: "Ada", Email: "ada@example.com", Website: "not a url"},
			want: "website must be a valid URL",
		},
		{
			name: "phone with letters",
			form: sampleForm{FullName: "Ada", Email: "ada@example.com", Phone: "call me"},
			want: "phone must be a valid phone number",
		},
		{
			name: "phone too short",
			form: sampleForm{FullName: "Ada", Email: "ada@example.com", Phone: "12345"},
			want: "phone must be a valid phone number",
		},
		{
			name: "phone misplaced plus",
			form: sampleForm{FullName: "Ada", Email: "ada@example.com", Phone: "123+4567890"},
			want: "phone must be a valid phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestStructReportsFirstFailureOnly(t *testing.T) {
	t.Parallel()
	// Both fields invalid; only the first failing field is reported.
	err := Struct(sampleForm{})
	require.Error(t, err)
	assert.Equal(t, "full_name is required", err.Error())
}
