package catalog

import (
	"context"

	"github.com/homehands/marketplace-api/internal/models"
)

// PageSize is the fixed page length of the public service list.
const PageSize = 9

type Repository interface {
	// -------- Company --------
	GetCompanyByAccountID(
		ctx context.Context,
		accountID uint,
	) (*models.CompanyProfile, error)

	// -------- Service --------
	CreateService(
		ctx context.Context,
		svc *models.Service,
	) error

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// ListServices returns one page, newest first (created_at DESC,
	// id DESC), plus the total count for the pager.
	ListServices(
		ctx context.Context,
		limit int,
		offset int,
	) ([]models.Service, int64, error)

	ListServicesByField(
		ctx context.Context,
		field string,
	) ([]models.Service, error)

	ListServicesForCompany(
		ctx context.Context,
		companyID uint,
	) ([]models.Service, error)
}
