package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/homehands/marketplace-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Company
// --------------------------------------------------

func (r *CatalogGormRepository) GetCompanyByAccountID(
	ctx context.Context,
	accountID uint,
) (*models.CompanyProfile, error) {

	var profile models.CompanyProfile
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Company.Account").
		First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	limit int,
	offset int,
) ([]models.Service, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *CatalogGormRepository) ListServicesByField(
	ctx context.Context,
	field string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("field = ?", field).
		Order("created_at DESC, id DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) ListServicesForCompany(
	ctx context.Context,
	companyID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
