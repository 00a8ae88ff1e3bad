package dto

import (
	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/validate"
)

// CreateAccountRequest is the admin dashboard's add-account form. The
// department set here includes "admin" (Administration), unlike workers.
type CreateAccountRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	Department      string `json:"department"`
	Gender          string `json:"gender"`
	Status          string `json:"status"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate applies the shared field rules to the add-account form.
func (r CreateAccountRequest) Validate() validate.Errors {
	errs := validate.Errors{}
	validate.Required(errs, "name", r.Name)
	validate.Email(errs, "email", r.Email)
	validate.Required(errs, "phone", r.Phone)
	validate.OneOf(errs, "role", r.Role, models.Roles())
	validate.OneOf(errs, "department", r.Department, models.AccountDepartments())
	validate.OneOf(errs, "gender", r.Gender, models.Genders())
	validate.OneOf(errs, "status", r.Status, models.Statuses())
	validate.Password(errs, "password", r.Password)
	validate.Confirm(errs, "confirmPassword", r.Password, r.ConfirmPassword)
	return errs
}

// CreateWorkerRequest is the admin dashboard's add-worker form.
type CreateWorkerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Department string `json:"department"`
	Gender     string `json:"gender"`
	Status     string `json:"status"`
	JoinDate   string `json:"joinDate"`
}

// Validate applies the shared field rules to the add-worker form.
func (r CreateWorkerRequest) Validate() validate.Errors {
	errs := validate.Errors{}
	validate.Required(errs, "name", r.Name)
	validate.Required(errs, "phone", r.Phone)
	validate.Required(errs, "nationalId", r.NationalID)
	validate.OneOf(errs, "department", r.Department, models.WorkerDepartments())
	validate.OneOf(errs, "gender", r.Gender, models.Genders())
	validate.OneOf(errs, "status", r.Status, models.Statuses())
	validate.Date(errs, "joinDate", r.JoinDate)
	return errs
}
