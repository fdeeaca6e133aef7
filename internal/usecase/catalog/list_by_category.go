package catalog

import (
	"context"

	domain "github.com/homehands/marketplace-api/internal/domain/catalog"
	"github.com/homehands/marketplace-api/internal/models"
)

type ListByCategory struct {
	repo domain.Repository
}

func NewListByCategory(repo domain.Repository) *ListByCategory {
	return &ListByCategory{repo: repo}
}

// Execute filters the catalog by category. The argument may be a URL slug
// ("air-conditioner"); an unknown category yields an empty list.
func (uc *ListByCategory) Execute(
	ctx context.Context,
	slug string,
) (string, []models.Service, error) {

	field := domain.NormalizeCategory(slug)
	if !domain.IsCategory(field) || field == domain.AllInOne {
		return field, []models.Service{}, nil
	}

	services, err := uc.repo.ListServicesByField(ctx, field)
	if err != nil {
		return field, nil, err
	}
	return field, services, nil
}
