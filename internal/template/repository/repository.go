package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/smallbiznis/docpress/internal/template/domain"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tmpl *domain.Template) error
	Update(ctx context.Context, db *gorm.DB, tmpl *domain.Template) error
	Delete(ctx context.Context, db *gorm.DB, orgID int64, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, orgID int64, id snowflake.ID) (*domain.Template, error)
	FindDefault(ctx context.Context, db *gorm.DB, orgID int64, kind domain.Kind) (*domain.Template, error)
	ClearDefault(ctx context.Context, db *gorm.DB, orgID int64, kind domain.Kind) error
	List(ctx context.Context, db *gorm.DB, orgID int64, filter domain.ListRequest) ([]domain.Template, error)
}

type repositoryImpl struct{}

// Provide constructs the template repository.
func Provide() Repository {
	return &repositoryImpl{}
}

func (repositoryImpl) Insert(ctx context.Context, db *gorm.DB, tmpl *domain.Template) error {
	return db.WithContext(ctx).Create(tmpl).Error
}

func (repositoryImpl) Update(ctx context.Context, db *gorm.DB, tmpl *domain.Template) error {
	return db.WithContext(ctx).Save(tmpl).Error
}

func (repositoryImpl) Delete(ctx context.Context, db *gorm.DB, orgID int64, id snowflake.ID) error {
	result := db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		Delete(&domain.Template{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (repositoryImpl) FindByID(ctx context.Context, db *gorm.DB, orgID int64, id snowflake.ID) (*domain.Template, error) {
	var tmpl domain.Template
	err := db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}

func (repositoryImpl) FindDefault(ctx context.Context, db *gorm.DB, orgID int64, kind domain.Kind) (*domain.Template, error) {
	var tmpl domain.Template
	err := db.WithContext(ctx).
		Where("org_id = ? AND kind = ? AND is_default = ?", orgID, kind, true).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoDefaultTemplate
		}
		return nil, err
	}
	return &tmpl, nil
}

func (repositoryImpl) ClearDefault(ctx context.Context, db *gorm.DB, orgID int64, kind domain.Kind) error {
	return db.WithContext(ctx).
		Model(&domain.Template{}).
		Where("org_id = ? AND kind = ? AND is_default = ?", orgID, kind, true).
		Update("is_default", false).Error
}

func (repositoryImpl) List(ctx context.Context, db *gorm.DB, orgID int64, filter domain.ListRequest) ([]domain.Template, error) {
	query := db.WithContext(ctx).
		Model(&domain.Template{}).
		Where("org_id = ?", orgID)
	if kind := strings.TrimSpace(filter.Kind); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if filter.IsDefault != nil {
		query = query.Where("is_default = ?", *filter.IsDefault)
	}

	var templates []domain.Template
	if err := query.Order("created_at ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
