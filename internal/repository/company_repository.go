package repository

import (
	"context"

	"dayflow/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetForUser(ctx context.Context, userID string, companyID *string) ([]model.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// GetForUser returns companies the user owns plus the one they belong to.
func (r *companyRepository) GetForUser(ctx context.Context, userID string, companyID *string) ([]model.Company, error) {
	var list []model.Company
	query := r.db.WithContext(ctx).Where("owner_id = ?", userID)
	if companyID != nil {
		query = query.Or("id = ?", *companyID)
	}
	err := query.Order("created_at asc").Find(&list).Error
	return list, err
}
