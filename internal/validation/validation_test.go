package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/billing/internal/validation"
)

type contact struct {
	Email string `json:"email" validate:"required,email"`
}

type signup struct {
	Name     string    `json:"name" validate:"required"`
	Age      *int      `json:"age" validate:"required"`
	Contact  contact   `json:"contact"`
	Contacts []contact `json:"contacts" validate:"dive"`
}

func TestStruct(t *testing.T) {
	age := 30

	type testCase struct {
		name  string
		input signup
		want  validation.Violations
	}

	tests := []testCase{
		{
			name: "Valid",
			input: signup{
				Name:    "Sara",
				Age:     &age,
				Contact: contact{Email: "sara@example.com"},
			},
		},
		{
			name: "MissingFields",
			input: signup{
				Contact: contact{Email: "sara@example.com"},
			},
			want: validation.Violations{
				"name": "required",
				"age":  "required",
			},
		},
		{
			name: "MalformedEmail",
			input: signup{
				Name:    "Sara",
				Age:     &age,
				Contact: contact{Email: "sara.example.com"},
			},
			want: validation.Violations{"contact.email": "email"},
		},
		{
			name: "NestedSlice",
			input: signup{
				Name:     "Sara",
				Age:      &age,
				Contact:  contact{Email: "sara@example.com"},
				Contacts: []contact{{Email: "ok@example.com"}, {Email: "bad@"}},
			},
			want: validation.Violations{"contacts[1].email": "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.input)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr.Violations)
			assert.True(t, validation.Is(err))
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &validation.Error{Violations: validation.Violations{
		"name":  "required",
		"email": "email",
	}}

	assert.Equal(t, "validation failed: email: email, name: required", err.Error())
}

func TestStruct_NotAStruct(t *testing.T) {
	err := validation.Struct("plain string")
	assert.Error(t, err)
	assert.False(t, validation.Is(err))
}

func TestError_Nest(t *testing.T) {
	err := &validation.Error{Violations: validation.Violations{"email": "email"}}

	nested := err.Nest("customer")
	assert.Equal(t, validation.Violations{"customer.email": "email"}, nested.Violations)
	assert.Equal(t, validation.Violations{"email": "email"}, err.Violations)
}
