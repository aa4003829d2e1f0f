package repository

import (
	"context"
	"time"

	"dayflow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository interface {
	Create(ctx context.Context, leave *model.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*model.LeaveRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]model.LeaveRequest, error)
	GetPending(ctx context.Context, companyID *string) ([]model.LeaveRequest, error)
	Decide(ctx context.Context, id string, status string, reviewerID string, at time.Time, leaveDays []model.Attendance) (bool, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Omit("User").Create(leave).Error
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&leave).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) GetByUserID(ctx context.Context, userID string) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) pendingQuery(ctx context.Context, companyID *string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.LeaveRequest{}).Where("status = ?", model.LeavePending)
	if companyID != nil {
		query = query.Where("user_id IN (?)", r.db.Model(&model.User{}).Select("id").Where("company_id = ?", *companyID))
	}
	return query
}

func (r *leaveRepository) GetPending(ctx context.Context, companyID *string) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.pendingQuery(ctx, companyID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "employee_id", "email")
		}).
		Order("created_at desc").Find(&list).Error
	return list, err
}

// Decide moves a pending request to status. It reports false when the row was
// no longer pending. leaveDays are written in the same transaction.
func (r *leaveRepository) Decide(ctx context.Context, id string, status string, reviewerID string, at time.Time, leaveDays []model.Attendance) (bool, error) {
	updated := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.LeaveRequest{}).
			Where("id = ? AND status = ?", id, model.LeavePending).
			Updates(map[string]interface{}{
				"status":      status,
				"reviewed_by": reviewerID,
				"reviewed_at": at,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		updated = true

		if len(leaveDays) > 0 {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&leaveDays).Error
		}
		return nil
	})
	return updated, err
}
