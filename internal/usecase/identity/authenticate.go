package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/homehands/marketplace-api/internal/domain/identity"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute verifies an email/password pair. Unknown email and wrong password
// both come back as invalid_credentials so callers cannot probe for
// registered addresses.
func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.Account, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	account, err := uc.repo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return account, nil
}
