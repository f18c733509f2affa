package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDDoctor  = 1
	RoleIDPatient = 2
)

// RoleNames constants
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Navigation targets handed back to clients
const (
	LoginPath            = "/login"
	DoctorDashboardPath  = "/doctor/dashboard"
	PatientDashboardPath = "/patient/dashboard"
)

// RoleIDByName maps a role name to its ID. ok is false for unknown roles.
func RoleIDByName(name string) (int, bool) {
	switch name {
	case RoleDoctor:
		return RoleIDDoctor, true
	case RolePatient:
		return RoleIDPatient, true
	default:
		return 0, false
	}
}

// RoleNameByID maps a role ID to its name, or "" for unknown IDs.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDPatient:
		return RolePatient
	default:
		return ""
	}
}

// DashboardPath returns the landing route for a role.
func DashboardPath(role string) string {
	switch role {
	case RoleDoctor:
		return DoctorDashboardPath
	case RolePatient:
		return PatientDashboardPath
	default:
		return LoginPath
	}
}
