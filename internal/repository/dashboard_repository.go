package repository

import (
	"context"

	"dayflow/internal/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalEmployees int64            `json:"total_employees"`
	Today          map[string]int64 `json:"today"`
	ThisMonth      map[string]int64 `json:"this_month"`
	PendingLeaves  int64            `json:"pending_leaves"`
}

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context, companyID *string, date string, month int, year int) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) companyUsers(companyID *string) *gorm.DB {
	return r.db.Model(&model.User{}).Select("id").Where("company_id = ?", *companyID)
}

func (r *dashboardRepository) countByStatus(ctx context.Context, companyID *string, where string, arg interface{}) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	query := r.db.WithContext(ctx).Model(&model.Attendance{}).Where(where, arg)
	if companyID != nil {
		query = query.Where("user_id IN (?)", r.companyUsers(companyID))
	}
	if err := query.Group("status").Select("status, count(*) as count").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(model.AttendanceStatuses))
	for _, s := range model.AttendanceStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *dashboardRepository) GetDashboardStats(ctx context.Context, companyID *string, date string, month int, year int) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// 1. Employees
	employees := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", model.RoleEmployee)
	if companyID != nil {
		employees = employees.Where("company_id = ?", *companyID)
	}
	if err := employees.Count(&stats.TotalEmployees).Error; err != nil {
		return nil, err
	}

	// 2. Today
	today, err := r.countByStatus(ctx, companyID, "date = ?", date)
	if err != nil {
		return nil, err
	}
	stats.Today = today

	// 3. This month
	monthly, err := r.countByStatus(ctx, companyID, "date LIKE ?", monthPrefix(month, year))
	if err != nil {
		return nil, err
	}
	stats.ThisMonth = monthly

	// 4. Pending leave
	pending := r.db.WithContext(ctx).Model(&model.LeaveRequest{}).Where("status = ?", model.LeavePending)
	if companyID != nil {
		pending = pending.Where("user_id IN (?)", r.companyUsers(companyID))
	}
	if err := pending.Count(&stats.PendingLeaves).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
