package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/homehands/marketplace-api/internal/audit"
	domain "github.com/homehands/marketplace-api/internal/domain/catalog"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateServiceInput struct {
	AccountID uint

	Name         string
	Description  string
	Field        string
	PricePerHour decimal.Decimal
}

// ======================================================
// USE CASE
// ======================================================

type CreateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateService {
	return &CreateService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	in CreateServiceInput,
) (*models.Service, error) {

	// only accounts with a company profile may list services
	company, err := uc.repo.GetCompanyByAccountID(ctx, in.AccountID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := domain.CanListIn(company.Field, in.Field); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(in.Name)
	description := domain.NormalizeDescription(in.Description)

	if err := domain.ValidateListing(name, description, in.PricePerHour); err != nil {
		return nil, err
	}

	svc := &models.Service{
		CompanyID:    company.ID,
		Name:         name,
		Description:  description,
		Field:        in.Field,
		PricePerHour: in.PricePerHour,
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &in.AccountID,
		Action:    audit.ActionServiceCreated,
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	return svc, nil
}
