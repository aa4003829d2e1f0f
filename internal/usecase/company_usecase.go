package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"dayflow/internal/model"
	"dayflow/internal/repository"
)

type CompanyUsecase struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
}

func NewCompanyUsecase(companies repository.CompanyRepository, users repository.UserRepository) *CompanyUsecase {
	return &CompanyUsecase{companies: companies, users: users}
}

type CompanyInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Industry       string `json:"industry"`
	EmployeesCount int    `json:"employees_count"`
}

// DashboardPath is where the UI lands a user of role after onboarding.
func DashboardPath(role string) string {
	if role == model.RoleHR || role == model.RoleAdmin {
		return "/dashboard/hr"
	}
	return "/dashboard/employee"
}

// Create inserts a company owned by owner. An owner without a company is moved
// into the new one.
func (u *CompanyUsecase) Create(ctx context.Context, owner *model.User, input CompanyInput) (*model.Company, string, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, "", fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, "", fmt.Errorf("%w: company email is invalid", ErrInvalidInput)
		}
	}
	if !model.ValidIndustry(input.Industry) {
		return nil, "", fmt.Errorf("%w: industry must be one of %s", ErrInvalidInput, strings.Join(model.Industries, ", "))
	}
	if input.EmployeesCount < 1 {
		return nil, "", fmt.Errorf("%w: employees_count must be at least 1", ErrInvalidInput)
	}

	company := &model.Company{
		Name:           name,
		Email:          email,
		Industry:       input.Industry,
		EmployeesCount: input.EmployeesCount,
		OwnerID:        owner.ID,
	}
	if err := u.companies.Create(ctx, company); err != nil {
		return nil, "", err
	}

	if owner.CompanyID == nil {
		if err := u.users.SetCompany(ctx, owner.ID, company.ID); err != nil {
			return nil, "", err
		}
		owner.CompanyID = &company.ID
	}
	return company, DashboardPath(owner.Role), nil
}

func (u *CompanyUsecase) List(ctx context.Context, user *model.User) ([]model.Company, error) {
	return u.companies.GetForUser(ctx, user.ID, user.CompanyID)
}

// Select makes one of the user's companies the active one.
func (u *CompanyUsecase) Select(ctx context.Context, user *model.User, companyID string) (*model.Company, error) {
	companies, err := u.List(ctx, user)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].ID == companyID {
			if err := u.users.SetCompany(ctx, user.ID, companyID); err != nil {
				return nil, err
			}
			user.CompanyID = &companies[i].ID
			return &companies[i], nil
		}
	}
	return nil, ErrNotFound
}
