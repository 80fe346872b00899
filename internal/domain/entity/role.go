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

// Role IDs (seeded by migration)
const (
	RoleIDAdmin    = 1
	RoleIDEmployee = 2
	RoleIDDoctor   = 3
	RoleIDNurse    = 4
)

// Role codes
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleDoctor   = "doctor"
	RoleNurse    = "nurse"
)

// RoleCodeByID maps a role ID to its code. Returns "" for unknown IDs.
func RoleCodeByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDEmployee:
		return RoleEmployee
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDNurse:
		return RoleNurse
	default:
		return ""
	}
}
