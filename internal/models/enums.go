package models

// Staff roles. The closed set mirrors the dashboards the product plans to
// grow into; only RoleAdmin is session-eligible today.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleFloorManager = "floor_manager"
	RoleSupervisor   = "supervisor"
	RoleWorker       = "worker"
)

// Factory departments. DepartmentAdmin ("Administration") is selectable on
// the account-creation form only, never on the worker form.
const (
	DepartmentCutting   = "cutting"
	DepartmentSewing    = "sewing"
	DepartmentFinishing = "finishing"
	DepartmentQuality   = "quality"
	DepartmentPackaging = "packaging"
	DepartmentAdmin     = "admin"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Roles lists every role in enumeration order.
func Roles() []string {
	return []string{RoleAdmin, RoleManager, RoleFloorManager, RoleSupervisor, RoleWorker}
}

// WorkerDepartments lists the departments valid on the add-worker form.
func WorkerDepartments() []string {
	return []string{DepartmentCutting, DepartmentSewing, DepartmentFinishing, DepartmentQuality, DepartmentPackaging}
}

// AccountDepartments lists the departments valid on the add-account form.
func AccountDepartments() []string {
	return append(WorkerDepartments(), DepartmentAdmin)
}

// Genders lists the gender options on the account and worker forms.
func Genders() []string {
	return []string{GenderMale, GenderFemale, GenderOther}
}

// RegisterGenders lists the gender options on the public register form.
func RegisterGenders() []string {
	return []string{GenderMale, GenderFemale}
}

// Statuses lists account statuses; StatusActive is the default.
func Statuses() []string {
	return []string{StatusActive, StatusInactive}
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return contains(Roles(), role)
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
