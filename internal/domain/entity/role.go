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
	RoleIDAdministrator = 1
	RoleIDProfessional  = 2
	RoleIDPatient       = 3
)

// RoleNames constants
const (
	RoleAdministrator = "administrator"
	RoleProfessional  = "professional"
	RolePatient       = "patient"
)

// RoleNameForID maps a role ID to its name. Returns empty string for unknown IDs.
func RoleNameForID(roleID int) string {
	switch roleID {
	case RoleIDAdministrator:
		return RoleAdministrator
	case RoleIDProfessional:
		return RoleProfessional
	case RoleIDPatient:
		return RolePatient
	default:
		return ""
	}
}
