package repository

import (
	"context"

	"dayflow/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	SetCompany(ctx context.Context, id string, companyID string) error
	GetByRole(ctx context.Context, role string, companyID *string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("Company").Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Company").Save(user).Error
}

func (r *userRepository) SetCompany(ctx context.Context, id string, companyID string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("company_id", companyID).Error
}

func (r *userRepository) GetByRole(ctx context.Context, role string, companyID *string) ([]model.User, error) {
	var users []model.User
	query := r.db.WithContext(ctx).Where("role = ?", role)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}
	err := query.Order("name asc").Find(&users).Error
	return users, err
}
