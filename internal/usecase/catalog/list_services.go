package catalog

import (
	"context"

	domain "github.com/homehands/marketplace-api/internal/domain/catalog"
	"github.com/homehands/marketplace-api/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute returns one page of the public catalog, newest listings first.
// Pages are 1-based and fixed at domain.PageSize entries; a page past the
// end is an empty page, not an error.
func (uc *ListServices) Execute(
	ctx context.Context,
	page int,
) ([]models.Service, int64, error) {

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * domain.PageSize

	return uc.repo.ListServices(ctx, domain.PageSize, offset)
}
