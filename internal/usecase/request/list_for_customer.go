package request

import (
	"context"

	domain "github.com/homehands/marketplace-api/internal/domain/request"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

type ListForCustomer struct {
	repo domain.Repository
}

func NewListForCustomer(repo domain.Repository) *ListForCustomer {
	return &ListForCustomer{repo: repo}
}

// Execute lists the caller's own orders, newest first, with the referenced
// service loaded so cost can be computed.
func (uc *ListForCustomer) Execute(
	ctx context.Context,
	accountID uint,
) ([]models.ServiceRequest, error) {

	customer, err := uc.repo.GetCustomerByAccountID(ctx, accountID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return uc.repo.ListRequestsForCustomer(ctx, customer.ID)
}
