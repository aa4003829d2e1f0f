package usecase

import (
	"bytes"
	"context"
	"errors"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/payroll"
	"dayflow/internal/report"
	"dayflow/internal/repository"

	"gorm.io/gorm"
)

type HRUsecase struct {
	users      repository.UserRepository
	attendance repository.AttendanceRepository
	dashboard  repository.DashboardRepository
	now        func() time.Time
}

func NewHRUsecase(users repository.UserRepository, attendance repository.AttendanceRepository, dashboard repository.DashboardRepository) *HRUsecase {
	return &HRUsecase{users: users, attendance: attendance, dashboard: dashboard, now: time.Now}
}

func (u *HRUsecase) Employees(ctx context.Context, hr *model.User) ([]model.User, error) {
	return u.users.GetByRole(ctx, model.RoleEmployee, hr.CompanyID)
}

func (u *HRUsecase) employee(ctx context.Context, hr *model.User, id string) (*model.User, error) {
	emp, err := u.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if !SameCompany(hr, emp) {
		return nil, ErrNotFound
	}
	return emp, nil
}

func (u *HRUsecase) EmployeeAttendance(ctx context.Context, hr *model.User, id string) ([]model.Attendance, error) {
	emp, err := u.employee(ctx, hr, id)
	if err != nil {
		return nil, err
	}
	return u.attendance.GetHistory(ctx, emp.ID, DefaultHistoryLimit)
}

type EmployeePayroll struct {
	Employee  *model.User       `json:"employee"`
	Breakdown payroll.Breakdown `json:"breakdown"`
	Formatted payroll.Formatted `json:"formatted"`
}

func PayrollFor(user *model.User) *EmployeePayroll {
	b := payroll.Calculate(user.Salary)
	return &EmployeePayroll{Employee: user, Breakdown: b, Formatted: b.Format()}
}

func (u *HRUsecase) EmployeePayroll(ctx context.Context, hr *model.User, id string) (*EmployeePayroll, error) {
	emp, err := u.employee(ctx, hr, id)
	if err != nil {
		return nil, err
	}
	return PayrollFor(emp), nil
}

func (u *HRUsecase) Dashboard(ctx context.Context, hr *model.User) (*repository.DashboardStats, error) {
	now := u.now()
	return u.dashboard.GetDashboardStats(ctx, hr.CompanyID, now.Format(model.DateLayout), int(now.Month()), now.Year())
}

func (u *HRUsecase) AttendanceReport(ctx context.Context, hr *model.User, month int, year int) (*bytes.Buffer, error) {
	if month == 0 && year == 0 {
		now := u.now()
		month, year = int(now.Month()), now.Year()
	}
	if err := validMonth(month, year); err != nil {
		return nil, err
	}

	employees, err := u.Employees(ctx, hr)
	if err != nil {
		return nil, err
	}
	records, err := u.attendance.GetByMonthAndCompany(ctx, month, year, hr.CompanyID)
	if err != nil {
		return nil, err
	}
	return report.MonthlyAttendance(month, year, employees, records)
}
