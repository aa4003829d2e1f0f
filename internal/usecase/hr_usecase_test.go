package usecase

import (
	"context"
	"testing"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHRDashboardAndEmployees(t *testing.T) {
	db := newTestDB(t)
	hr := seedUser(t, db, "Sarah", model.RoleHR, nil)
	company := seedCompany(t, db, hr)
	hr.CompanyID = &company.ID
	john := seedUser(t, db, "John", model.RoleEmployee, &company.ID)
	amy := seedUser(t, db, "Amy", model.RoleEmployee, &company.ID)
	seedUser(t, db, "Elsewhere", model.RoleEmployee, nil)

	attendance := repository.NewAttendanceRepository(db)
	uc := NewHRUsecase(repository.NewUserRepository(db), attendance, repository.NewDashboardRepository(db))
	ctx := context.Background()

	today := time.Now().Format(model.DateLayout)
	require.NoError(t, attendance.Create(ctx, &model.Attendance{UserID: john.ID, Date: today, Status: model.StatusPresent}))
	require.NoError(t, attendance.Create(ctx, &model.Attendance{UserID: amy.ID, Date: today, Status: model.StatusHalfDay}))
	_, err := NewLeaveUsecase(repository.NewLeaveRepository(db), nil).Create(ctx, john, LeaveInput{FromDate: "2030-01-01", ToDate: "2030-01-02", Type: model.LeavePaid})
	require.NoError(t, err)

	employees, err := uc.Employees(ctx, hr)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Amy", employees[0].Name)

	stats, err := uc.Dashboard(ctx, hr)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.Today[model.StatusPresent])
	assert.Equal(t, int64(1), stats.Today[model.StatusHalfDay])
	assert.Equal(t, int64(0), stats.Today[model.StatusAbsent])
	assert.Equal(t, int64(1), stats.PendingLeaves)

	history, err := uc.EmployeeAttendance(ctx, hr, john.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	p, err := uc.EmployeePayroll(ctx, hr, john.ID)
	require.NoError(t, err)
	assert.Equal(t, 9200.0, p.Breakdown.Net)
	assert.Equal(t, "₹9,200.00", p.Formatted.Net)

	outsider := seedUser(t, db, "Other", model.RoleEmployee, nil)
	_, err = uc.EmployeePayroll(ctx, hr, outsider.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.EmployeeAttendance(ctx, hr, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHRAttendanceReport(t *testing.T) {
	db := newTestDB(t)
	hr := seedUser(t, db, "Sarah", model.RoleHR, nil)
	john := seedUser(t, db, "John", model.RoleEmployee, nil)
	attendance := repository.NewAttendanceRepository(db)
	uc := NewHRUsecase(repository.NewUserRepository(db), attendance, repository.NewDashboardRepository(db))
	ctx := context.Background()

	require.NoError(t, attendance.Create(ctx, &model.Attendance{UserID: john.ID, Date: "2024-02-01", Status: model.StatusAbsent}))

	buf, err := uc.AttendanceReport(ctx, hr, 2, 2024)
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Attendance", "C2")
	require.NoError(t, err)
	assert.Equal(t, "A", value)

	_, err = uc.AttendanceReport(ctx, hr, 0, 2024)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
