package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DateLayout = "2006-01-02"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
	StatusLeave   = "leave"
)

var AttendanceStatuses = []string{StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave}

// Attendance holds one row per user per day (idx_attendance_user_date).
type Attendance struct {
	ID        string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    string     `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_attendance_user_date"`
	CompanyID *string    `json:"company_id" gorm:"type:varchar(36);index"`
	Date      string     `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_user_date"`
	CheckIn   *time.Time `json:"check_in"`
	CheckOut  *time.Time `json:"check_out"`
	Status    string     `json:"status" gorm:"size:16;not null;default:present"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
