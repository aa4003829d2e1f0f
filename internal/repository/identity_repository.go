package repository

import (
	"context"
	"strings"
	"time"

	"dayflow/internal/model"

	"gorm.io/gorm"
)

type IdentityRepository interface {
	Create(ctx context.Context, identity *model.Identity) error
	FindByEmail(ctx context.Context, email string) (*model.Identity, error)
	FindByID(ctx context.Context, id string) (*model.Identity, error)
	TouchSignIn(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id string, hash string) error
}

type identityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db}
}

func (r *identityRepository) Create(ctx context.Context, identity *model.Identity) error {
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	return r.db.WithContext(ctx).Create(identity).Error
}

func (r *identityRepository) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	var identity model.Identity
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&identity).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) FindByID(ctx context.Context, id string) (*model.Identity, error) {
	var identity model.Identity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&identity).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) TouchSignIn(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Identity{}).Where("id = ?", id).Update("last_sign_in_at", at).Error
}

func (r *identityRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	return r.db.WithContext(ctx).Model(&model.Identity{}).Where("id = ?", id).Update("password_hash", hash).Error
}
