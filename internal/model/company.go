package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var Industries = []string{"Technology", "Finance", "Healthcare", "Retail", "Manufacturing", "Other"}

func ValidIndustry(industry string) bool {
	for _, i := range Industries {
		if i == industry {
			return true
		}
	}
	return false
}

type Company struct {
	ID             string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email"`
	Industry       string    `json:"industry" gorm:"size:32"`
	EmployeesCount int       `json:"employees_count" gorm:"default:1"`
	OwnerID        string    `json:"owner_id" gorm:"type:varchar(36);index;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
