package catalog

import (
	"context"

	domain "github.com/homehands/marketplace-api/internal/domain/catalog"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

type ListForCompany struct {
	repo domain.Repository
}

func NewListForCompany(repo domain.Repository) *ListForCompany {
	return &ListForCompany{repo: repo}
}

// Execute lists the caller's own services, newest first.
func (uc *ListForCompany) Execute(
	ctx context.Context,
	accountID uint,
) ([]models.Service, error) {

	company, err := uc.repo.GetCompanyByAccountID(ctx, accountID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return uc.repo.ListServicesForCompany(ctx, company.ID)
}
