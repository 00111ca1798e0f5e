package employee

import "time"

type Employee struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeNumber int    `gorm:"not null" json:"employee_number"`
	UserName       string `gorm:"not null;uniqueIndex:uq_employee_user_name" json:"user_name"`
	FirstName      string `gorm:"not null" json:"first_name"`
	LastName       string `gorm:"not null" json:"last_name"`
	ManagerID      *int64 `json:"manager_id"`
	Position       string `gorm:"not null" json:"position"`
	CellPhone      string `gorm:"not null" json:"cell_phone"`
	HomePhone      string `json:"home_phone"`
	Email          string `gorm:"not null;uniqueIndex:uq_employee_email" json:"email"`
	RoleID         int64  `gorm:"not null" json:"role_id"`
	IsContractor   bool   `gorm:"not null;default:false" json:"is_contractor"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`
	AllowOvertime  bool   `gorm:"not null;default:false" json:"allow_overtime"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Employee) TableName() string { return "employee" }

type Role struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"not null;uniqueIndex" json:"role_name"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Role) TableName() string { return "role" }

// FullName is used wherever a display name accompanies sheet data.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
