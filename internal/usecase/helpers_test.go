package usecase

import (
	"context"
	"testing"

	"dayflow/config"
	"dayflow/internal/model"
	"dayflow/internal/notify"
	"dayflow/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role string, companyID *string) *model.User {
	t.Helper()
	user := &model.User{
		Name:      name,
		Email:     uuid.NewString()[:8] + "@dayflow.test",
		Role:      role,
		Salary:    10000,
		CompanyID: companyID,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, owner *model.User) *model.Company {
	t.Helper()
	company := &model.Company{Name: "Acme", Industry: "Technology", EmployeesCount: 5, OwnerID: owner.ID}
	require.NoError(t, repository.NewCompanyRepository(db).Create(context.Background(), company))
	return company
}

type recordingNotifier struct {
	notices []notify.LeaveNotice
}

func (r *recordingNotifier) LeaveDecided(_ context.Context, n notify.LeaveNotice) error {
	r.notices = append(r.notices, n)
	return nil
}
