package identity

import (
	"context"
	"time"

	domain "github.com/homehands/marketplace-api/internal/domain/identity"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

// Viewer is the already-authenticated caller, or zero for anonymous reads.
type Viewer struct {
	AccountID uint
	IsStaff   bool
}

type Profile struct {
	Account  *models.Account
	Customer *models.CustomerProfile
	Company  *models.CompanyProfile

	// Age is filled for customer profiles only.
	Age int
}

// ======================================================
// USE CASE
// ======================================================

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

// Execute loads the profile behind a username. Company profiles are public;
// a customer profile is visible only to its owner or to staff.
func (uc *GetProfile) Execute(
	ctx context.Context,
	username string,
	viewer Viewer,
) (*Profile, error) {

	account, err := uc.repo.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	switch account.Role {
	case models.RoleCustomer:
		if viewer.AccountID != account.ID && !viewer.IsStaff {
			return nil, httperr.ErrBusiness(httperr.CodeForbidden)
		}
		customer, err := uc.repo.GetCustomerByAccountID(ctx, account.ID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return &Profile{
			Account:  account,
			Customer: customer,
			Age:      domain.Age(customer.BirthDate, time.Now().UTC()),
		}, nil

	case models.RoleCompany:
		company, err := uc.repo.GetCompanyByAccountID(ctx, account.ID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return &Profile{
			Account: account,
			Company: company,
		}, nil

	default:
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
}
