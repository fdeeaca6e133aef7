package catalog

import (
	"context"

	domain "github.com/homehands/marketplace-api/internal/domain/catalog"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	svc, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return svc, nil
}
