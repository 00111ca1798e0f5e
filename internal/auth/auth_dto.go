package auth

import "go-workforce/internal/employee"

type SignupRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	CellPhone      string `json:"cell_phone" binding:"required"`
	HomePhone      string `json:"home_phone"`
	EmployeeNumber int    `json:"employee_number" binding:"required"`
	Position       string `json:"position" binding:"required"`
	RoleID         int64  `json:"role_id" binding:"required"`
	ManagerID      *int64 `json:"manager_id"`
	IsContractor   bool   `json:"is_contractor"`
	IsActive       bool   `json:"is_active"`
	AllowOvertime  bool   `json:"allow_overtime"`
}

type LoginRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginUser is the employee record plus the resolved manager display name.
type LoginUser struct {
	employee.Employee
	ManagerName *string `json:"manager_name"`
}

type LoginResult struct {
	Token          string
	User           LoginUser
	ExpiresAt      int64
	TotalEmployees int64
}
