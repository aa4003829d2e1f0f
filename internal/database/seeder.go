package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/provider"
	"dayflow/internal/usecase"
	"dayflow/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const SeedPassword = "Test@12345"

type seedUser struct {
	Email  string
	Name   string
	Role   string
	Salary float64
}

var seedUsers = []seedUser{
	{Email: "employee@test.com", Name: "John Employee", Role: model.RoleEmployee, Salary: 45000},
	{Email: "hr@test.com", Name: "Sarah HR", Role: model.RoleHR, Salary: 60000},
	{Email: "admin@test.com", Name: "Admin User", Role: model.RoleAdmin, Salary: 80000},
}

// SeedAll creates the test accounts, a company, five days of attendance and
// two leave requests. It needs a service-role client and can be re-run.
func SeedAll(ctx context.Context, client *provider.Client, now time.Time) error {
	if !client.IsServiceRole() {
		return errors.New("seeding requires the service key")
	}
	db, err := client.DB(ctx)
	if err != nil {
		return err
	}

	// 1. Identities and profiles
	users := make([]model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		user, err := seedAccount(ctx, client, db, su)
		if err != nil {
			return fmt.Errorf("seed %s: %w", su.Email, err)
		}
		logger.Logger.Info("seeded user", zap.String("email", su.Email), zap.String("role", su.Role))
		users = append(users, *user)
	}
	hr := users[1]

	// 2. Company, owned by HR
	company := model.Company{
		Name:           "Acme Corporation",
		Email:          "hr@acme.com",
		Industry:       "Technology",
		EmployeesCount: 50,
		OwnerID:        hr.ID,
	}
	if err := db.Where(model.Company{Name: company.Name, OwnerID: hr.ID}).FirstOrCreate(&company).Error; err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	for i := range users {
		if err := db.Model(&model.User{}).Where("id = ?", users[i].ID).Update("company_id", company.ID).Error; err != nil {
			return err
		}
		users[i].CompanyID = &company.ID
	}

	// 3. Attendance for the last five days
	for i := 0; i < 5; i++ {
		day := now.AddDate(0, 0, -i)
		checkIn := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
		checkOut := time.Date(day.Year(), day.Month(), day.Day(), 17, 30, 0, 0, day.Location())
		for _, u := range users {
			row := model.Attendance{
				UserID:    u.ID,
				CompanyID: u.CompanyID,
				Date:      day.Format(model.DateLayout),
				CheckIn:   &checkIn,
				CheckOut:  &checkOut,
				Status:    model.StatusPresent,
			}
			if err := db.Where(model.Attendance{UserID: u.ID, Date: row.Date}).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed attendance: %w", err)
			}
		}
	}

	// 4. Leave requests for the employee
	employee := users[0]
	nextMonth := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	reviewedAt := now
	leaves := []model.LeaveRequest{
		{
			UserID:    employee.ID,
			CompanyID: employee.CompanyID,
			FromDate:  nextMonth.Format(model.DateLayout),
			ToDate:    nextMonth.AddDate(0, 0, 4).Format(model.DateLayout),
			Type:      model.LeavePaid,
			Status:    model.LeavePending,
			Remarks:   "Family vacation",
		},
		{
			UserID:     employee.ID,
			CompanyID:  employee.CompanyID,
			FromDate:   now.Format(model.DateLayout),
			ToDate:     now.Format(model.DateLayout),
			Type:       model.LeaveSick,
			Status:     model.LeaveApproved,
			Remarks:    "Flu",
			ReviewedBy: &hr.ID,
			ReviewedAt: &reviewedAt,
		},
	}
	for _, l := range leaves {
		leave := l
		key := model.LeaveRequest{UserID: leave.UserID, FromDate: leave.FromDate, Type: leave.Type}
		if err := db.Omit("User").Where(key).FirstOrCreate(&leave).Error; err != nil {
			return fmt.Errorf("seed leave: %w", err)
		}
	}

	logger.Logger.Info("seeding finished",
		zap.Int("users", len(users)),
		zap.String("company", company.Name),
	)
	return nil
}

// seedAccount creates the identity through the admin API, tolerating one that
// already exists, then makes sure the profile row is in place.
func seedAccount(ctx context.Context, client *provider.Client, db *gorm.DB, su seedUser) (*model.User, error) {
	var id string
	created, err := client.AdminCreateUser(ctx, provider.AdminUserAttributes{
		Email:        su.Email,
		Password:     SeedPassword,
		EmailConfirm: true,
	})
	switch {
	case err == nil:
		id = created.ID
	case provider.IsCode(err, provider.CodeUserAlreadyExists):
		var identity model.Identity
		if err := db.Where("email = ?", su.Email).First(&identity).Error; err != nil {
			return nil, err
		}
		id = identity.ID
	default:
		return nil, err
	}

	user := model.User{
		ID:         id,
		EmployeeID: usecase.EmployeeCode(id),
		Name:       su.Name,
		Email:      su.Email,
		Role:       su.Role,
		Salary:     su.Salary,
	}
	if err := db.Omit("Company").Where(model.User{ID: id}).FirstOrCreate(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
