package dto

import (
	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/validate"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the shared field rules to the login form.
func (r LoginRequest) Validate() validate.Errors {
	errs := validate.Errors{}
	validate.Email(errs, "email", r.Email)
	validate.Password(errs, "password", r.Password)
	return errs
}

// LoginResponse acknowledges a successful authentication. Session is true
// and Token populated only for admin logins; other roles are acknowledged
// without a session.
type LoginResponse struct {
	Token    string          `json:"token,omitempty"`
	Identity models.Identity `json:"identity"`
	Session  bool            `json:"session"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Gender          string `json:"gender"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate applies the shared field rules to the register form.
func (r RegisterRequest) Validate() validate.Errors {
	errs := validate.Errors{}
	validate.Required(errs, "name", r.Name)
	validate.Email(errs, "email", r.Email)
	validate.Required(errs, "phone", r.Phone)
	validate.OneOf(errs, "gender", r.Gender, models.RegisterGenders())
	validate.Password(errs, "password", r.Password)
	validate.Confirm(errs, "confirmPassword", r.Password, r.ConfirmPassword)
	return errs
}

type RecoverRequest struct {
	Email string `json:"email"`
}

// Validate checks the recovery form's single field.
func (r RecoverRequest) Validate() validate.Errors {
	errs := validate.Errors{}
	validate.Email(errs, "email", r.Email)
	return errs
}
