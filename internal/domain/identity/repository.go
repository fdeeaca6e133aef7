package identity

import (
	"context"

	"github.com/homehands/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Uniqueness predicates --------
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// -------- Account --------
	GetAccountByEmail(
		ctx context.Context,
		email string,
	) (*models.Account, error)

	GetAccountByUsername(
		ctx context.Context,
		username string,
	) (*models.Account, error)

	GetAccountByID(
		ctx context.Context,
		id uint,
	) (*models.Account, error)

	// -------- Registration (account + profile in one transaction) --------
	CreateCustomerAccount(
		ctx context.Context,
		account *models.Account,
		profile *models.CustomerProfile,
	) error

	CreateCompanyAccount(
		ctx context.Context,
		account *models.Account,
		profile *models.CompanyProfile,
	) error

	// -------- Profiles --------
	GetCustomerByAccountID(
		ctx context.Context,
		accountID uint,
	) (*models.CustomerProfile, error)

	GetCompanyByAccountID(
		ctx context.Context,
		accountID uint,
	) (*models.CompanyProfile, error)
}
