// Package validate holds the field rule set shared by every entry form
// (login, register, add-account, add-worker). Rules collect every failing
// field before reporting; nothing here is fail-fast.
package validate

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the only password requirement; there are no
// character-class rules.
const MinPasswordLength = 6

// Shape check only: something@something.dot, no whitespace or extra @ in
// the local part, at least one dot in the domain. Deliverability is not
// this layer's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgRequired      = "This field is required"
	msgEmail         = "Enter a valid email address"
	msgPasswordShort = "Password must be at least 6 characters"
	msgConfirm       = "Passwords do not match"
	msgSelect        = "Please select a valid option"
)

// Errors maps a field name to its first failing rule's message.
type Errors map[string]string

// Add records a failure for field unless one is already recorded.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Required fails the field when the value is empty after trimming.
func Required(e Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, msgRequired)
	}
}

// Email fails the field when empty or not shaped like an address.
func Email(e Errors, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		e.Add(field, msgRequired)
		return
	}
	if !emailPattern.MatchString(trimmed) {
		e.Add(field, msgEmail)
	}
}

// Password fails the field when empty or shorter than MinPasswordLength.
func Password(e Errors, field, value string) {
	if value == "" {
		e.Add(field, msgRequired)
		return
	}
	if len(value) < MinPasswordLength {
		e.Add(field, msgPasswordShort)
	}
}

// Confirm fails the confirm field when empty or not an exact match of the
// password. The error lands on the confirm field, never on password.
func Confirm(e Errors, field, password, confirm string) {
	if confirm == "" {
		e.Add(field, msgRequired)
		return
	}
	if confirm != password {
		e.Add(field, msgConfirm)
	}
}

// OneOf fails the field when no option is chosen or the value falls
// outside the closed option set.
func OneOf(e Errors, field, value string, options []string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, msgRequired)
		return
	}
	for _, opt := range options {
		if opt == value {
			return
		}
	}
	e.Add(field, msgSelect)
}

// Date fails the field when empty. No range or future/past checks.
func Date(e Errors, field, value string) {
	Required(e, field, value)
}

// EmailShape reports whether value passes the syntactic email check,
// for callers outside a form context.
func EmailShape(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}
