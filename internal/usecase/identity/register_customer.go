package identity

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/homehands/marketplace-api/internal/audit"
	domain "github.com/homehands/marketplace-api/internal/domain/identity"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
	"github.com/homehands/marketplace-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterCustomerInput struct {
	Username  string
	Email     string
	Password  string
	BirthDate time.Time
}

// ======================================================
// USE CASE
// ======================================================

type RegisterCustomer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterCustomer(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterCustomer {
	return &RegisterCustomer{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterCustomer) Execute(
	ctx context.Context,
	in RegisterCustomerInput,
) (*models.Account, *models.CustomerProfile, error) {

	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	account, err := validateAccountInput(
		ctx, uc.repo, username, email, in.Password,
	)
	if err != nil {
		return nil, nil, err
	}

	if err := domain.ValidateBirthDate(in.BirthDate, time.Now().UTC()); err != nil {
		return nil, nil, err
	}

	account.Role = models.RoleCustomer
	profile := &models.CustomerProfile{BirthDate: in.BirthDate}

	// account and profile persist together or not at all
	if err := uc.repo.CreateCustomerAccount(ctx, account, profile); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &account.ID,
		Action:    audit.ActionCustomerRegistered,
		Entity:    "account",
		EntityID:  &account.ID,
	})

	return account, profile, nil
}

// ======================================================
// SHARED VALIDATION
// ======================================================

// validateAccountInput runs the checks common to both registration flows
// and returns a role-less account with the credential already hashed.
func validateAccountInput(
	ctx context.Context,
	repo domain.Repository,
	username string,
	email string,
	password string,
) (*models.Account, error) {

	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrValidation("email")
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	if taken, err := repo.EmailExists(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	}

	if taken, err := repo.UsernameExists(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, httperr.ErrBusiness(httperr.CodeUsernameTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}, nil
}
