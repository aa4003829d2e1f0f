package repository

import (
	"context"
	"fmt"
	"time"

	"dayflow/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	GetByDate(ctx context.Context, userID string, date string) (*model.Attendance, error)
	SetCheckOut(ctx context.Context, id string, at time.Time) (int64, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]model.Attendance, error)
	GetByMonth(ctx context.Context, userID string, month int, year int) ([]model.Attendance, error)
	GetByMonthAndCompany(ctx context.Context, month int, year int, companyID *string) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) GetByDate(ctx context.Context, userID string, date string) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// SetCheckOut only touches a row that has checked in and not yet out, so a
// second check-out (or a check-out on a leave day) affects zero rows.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("id = ? AND check_in IS NOT NULL AND check_out IS NULL", id).
		Update("check_out", at)
	return result.RowsAffected, result.Error
}

func (r *attendanceRepository) GetHistory(ctx context.Context, userID string, limit int) ([]model.Attendance, error) {
	var history []model.Attendance
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date desc").Limit(limit).Find(&history).Error
	return history, err
}

func monthPrefix(month int, year int) string {
	return fmt.Sprintf("%04d-%02d-%%", year, month)
}

func (r *attendanceRepository) GetByMonth(ctx context.Context, userID string, month int, year int) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date LIKE ?", userID, monthPrefix(month, year)).
		Order("date asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonthAndCompany(ctx context.Context, month int, year int, companyID *string) ([]model.Attendance, error) {
	var list []model.Attendance
	query := r.db.WithContext(ctx).Where("date LIKE ?", monthPrefix(month, year))
	if companyID != nil {
		query = query.Where("user_id IN (?)", r.db.Model(&model.User{}).Select("id").Where("company_id = ?", *companyID))
	}
	err := query.Order("date asc").Find(&list).Error
	return list, err
}
