package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/homehands/marketplace-api/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

func (r *RequestGormRepository) GetCustomerByAccountID(
	ctx context.Context,
	accountID uint,
) (*models.CustomerProfile, error) {

	var profile models.CustomerProfile
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *RequestGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *RequestGormRepository) CreateRequest(
	ctx context.Context,
	req *models.ServiceRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestGormRepository) ListRequestsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.ServiceRequest, error) {

	var requests []models.ServiceRequest
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("requested_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
