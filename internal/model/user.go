package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// User is the profile row. Its ID is the auth identity ID.
type User struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	EmployeeID string    `json:"employee_id" gorm:"size:32;index"`
	Name       string    `json:"name"`
	Email      string    `json:"email" gorm:"size:255;index"`
	Role       string    `json:"role" gorm:"size:16;default:employee;index"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Salary     float64   `json:"salary" gorm:"type:decimal(12,2);default:0"`
	CompanyID  *string   `json:"company_id" gorm:"type:varchar(36);index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Identity is the credential record owned by the auth side of the provider.
type Identity struct {
	ID               string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email            string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	LastSignInAt     *time.Time `json:"last_sign_in_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Identity) TableName() string {
	return "auth_identities"
}

func (i *Identity) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
