package identity

import (
	"context"
	"strings"

	"github.com/homehands/marketplace-api/internal/audit"
	"github.com/homehands/marketplace-api/internal/domain/catalog"
	domain "github.com/homehands/marketplace-api/internal/domain/identity"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterCompanyInput struct {
	Username string
	Email    string
	Password string
	Field    string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterCompany struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterCompany(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterCompany {
	return &RegisterCompany{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterCompany) Execute(
	ctx context.Context,
	in RegisterCompanyInput,
) (*models.Account, *models.CompanyProfile, error) {

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	account, err := validateAccountInput(
		ctx, uc.repo, username, email, in.Password,
	)
	if err != nil {
		return nil, nil, err
	}

	// companies may pick any category, "All in One" included
	if !catalog.IsCategory(in.Field) {
		return nil, nil, httperr.ErrValidation("field")
	}

	account.Role = models.RoleCompany
	profile := &models.CompanyProfile{Field: in.Field}

	if err := uc.repo.CreateCompanyAccount(ctx, account, profile); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &account.ID,
		Action:    audit.ActionCompanyRegistered,
		Entity:    "account",
		EntityID:  &account.ID,
	})

	return account, profile, nil
}
