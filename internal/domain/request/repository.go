package request

import (
	"context"

	"github.com/homehands/marketplace-api/internal/models"
)

type Repository interface {
	GetCustomerByAccountID(
		ctx context.Context,
		accountID uint,
	) (*models.CustomerProfile, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	CreateRequest(
		ctx context.Context,
		req *models.ServiceRequest,
	) error

	// ListRequestsForCustomer returns the customer's orders newest first,
	// each with its Service preloaded so cost can be derived.
	ListRequestsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.ServiceRequest, error)
}
