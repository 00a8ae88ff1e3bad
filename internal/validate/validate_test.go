package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailShapes(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"admin@motionmatrix.com", true},
		{"a.b@sub.domain.co", true},
		{"", false},
		{"plainaddress", false},
		{"no@dot", false},
		{"two@@at.com", false},
		{"spaces in@local.com", false},
		{"@missing-local.com", false},
	}
	for _, tc := range cases {
		errs := Errors{}
		Email(errs, "email", tc.email)
		if tc.valid {
			assert.True(t, errs.Valid(), "expected %q to pass", tc.email)
		} else {
			assert.Contains(t, errs, "email", "expected %q to fail", tc.email)
		}
	}
}

func TestPasswordLengthBoundary(t *testing.T) {
	errs := Errors{}
	Password(errs, "password", "abcde")
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])

	errs = Errors{}
	Password(errs, "password", "abcdef")
	assert.True(t, errs.Valid())

	errs = Errors{}
	Password(errs, "password", "")
	assert.Equal(t, "This field is required", errs["password"])
}

func TestConfirmMismatchLandsOnConfirmField(t *testing.T) {
	errs := Errors{}
	Password(errs, "password", "secret1")
	Confirm(errs, "confirmPassword", "secret1", "secret2")

	assert.NotContains(t, errs, "password")
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	errs := Errors{}
	Required(errs, "name", "   ")
	assert.Contains(t, errs, "name")

	errs = Errors{}
	Required(errs, "name", "  Arif ")
	assert.True(t, errs.Valid())
}

func TestOneOf(t *testing.T) {
	options := []string{"active", "inactive"}

	errs := Errors{}
	OneOf(errs, "status", "", options)
	assert.Equal(t, "This field is required", errs["status"])

	errs = Errors{}
	OneOf(errs, "status", "archived", options)
	assert.Equal(t, "Please select a valid option", errs["status"])

	errs = Errors{}
	OneOf(errs, "status", "active", options)
	assert.True(t, errs.Valid())
}

func TestErrorsCollectEveryField(t *testing.T) {
	// A single pass must report all failing fields, not stop at the first.
	errs := Errors{}
	Required(errs, "name", "")
	Email(errs, "email", "not-an-email")
	Password(errs, "password", "abc")
	Confirm(errs, "confirmPassword", "abc", "")

	assert.Len(t, errs, 4)
}

func TestAddKeepsFirstMessage(t *testing.T) {
	errs := Errors{}
	errs.Add("email", "first")
	errs.Add("email", "second")
	assert.Equal(t, "first", errs["email"])
}
