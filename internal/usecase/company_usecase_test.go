package usecase

import (
	"context"
	"testing"

	"dayflow/internal/model"
	"dayflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompany(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	uc := NewCompanyUsecase(repository.NewCompanyRepository(db), users)
	owner := seedUser(t, db, "Sarah", model.RoleHR, nil)
	ctx := context.Background()

	invalid := []CompanyInput{
		{Name: "", Industry: "Technology", EmployeesCount: 1},
		{Name: "Acme", Industry: "Mining", EmployeesCount: 1},
		{Name: "Acme", Industry: "Finance", EmployeesCount: 0},
		{Name: "Acme", Email: "nope", Industry: "Finance", EmployeesCount: 3},
	}
	for _, in := range invalid {
		_, _, err := uc.Create(ctx, owner, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	company, redirect, err := uc.Create(ctx, owner, CompanyInput{Name: "Acme", Email: "hr@acme.com", Industry: "Technology", EmployeesCount: 50})
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/hr", redirect)
	assert.Equal(t, owner.ID, company.OwnerID)

	stored, err := users.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CompanyID)
	assert.Equal(t, company.ID, *stored.CompanyID)

	// a second company does not move the owner
	second, _, err := uc.Create(ctx, owner, CompanyInput{Name: "Beta", Industry: "Other", EmployeesCount: 2})
	require.NoError(t, err)
	stored, _ = users.FindByID(ctx, owner.ID)
	assert.Equal(t, company.ID, *stored.CompanyID)

	list, err := uc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	selected, err := uc.Select(ctx, owner, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beta", selected.Name)
	stored, _ = users.FindByID(ctx, owner.ID)
	assert.Equal(t, second.ID, *stored.CompanyID)

	_, err = uc.Select(ctx, owner, "someone-elses")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCompaniesNeedsOnboarding(t *testing.T) {
	db := newTestDB(t)
	uc := NewCompanyUsecase(repository.NewCompanyRepository(db), repository.NewUserRepository(db))
	emp := seedUser(t, db, "John", model.RoleEmployee, nil)

	list, err := uc.List(context.Background(), emp)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, "/dashboard/employee", DashboardPath(emp.Role))
}
