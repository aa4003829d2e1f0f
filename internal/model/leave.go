package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LeavePaid   = "paid"
	LeaveSick   = "sick"
	LeaveUnpaid = "unpaid"
)

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

func ValidLeaveType(t string) bool {
	switch t {
	case LeavePaid, LeaveSick, LeaveUnpaid:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID         string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID     string     `json:"user_id" gorm:"type:varchar(36);not null;index"`
	CompanyID  *string    `json:"company_id" gorm:"type:varchar(36);index"`
	FromDate   string     `json:"from_date" gorm:"size:10;not null"`
	ToDate     string     `json:"to_date" gorm:"size:10;not null"`
	Type       string     `json:"type" gorm:"size:16;not null"`
	Status     string     `json:"status" gorm:"size:16;not null;default:pending;index"`
	Remarks    string     `json:"remarks"`
	ReviewedBy *string    `json:"reviewed_by" gorm:"type:varchar(36)"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `json:"created_at"`

	// Requester, preloaded for the HR approval list
	User *User `json:"users,omitempty" gorm:"foreignKey:UserID"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
