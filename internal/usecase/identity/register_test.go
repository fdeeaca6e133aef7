package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
	ucidentity "github.com/homehands/marketplace-api/internal/usecase/identity"
)

// MockIdentityRepo implements identity.Repository over in-memory maps.
type MockIdentityRepo struct {
	accounts  map[string]*models.Account // by username
	customers map[uint]*models.CustomerProfile
	companies map[uint]*models.CompanyProfile

	nextID uint
}

func NewMockIdentityRepo() *MockIdentityRepo {
	return &MockIdentityRepo{
		accounts:  map[string]*models.Account{},
		customers: map[uint]*models.CustomerProfile{},
		companies: map[uint]*models.CompanyProfile{},
	}
}

func (m *MockIdentityRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockIdentityRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, ok := m.accounts[username]
	return ok, nil
}

func (m *MockIdentityRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *MockIdentityRepo) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	if a, ok := m.accounts[username]; ok {
		return a, nil
	}
	return nil, errors.New("record not found")
}

func (m *MockIdentityRepo) GetAccountByID(ctx context.Context, id uint) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *MockIdentityRepo) CreateCustomerAccount(ctx context.Context, account *models.Account, profile *models.CustomerProfile) error {
	m.nextID++
	account.ID = m.nextID
	profile.AccountID = account.ID
	m.accounts[account.Username] = account
	m.customers[account.ID] = profile
	return nil
}

func (m *MockIdentityRepo) CreateCompanyAccount(ctx context.Context, account *models.Account, profile *models.CompanyProfile) error {
	m.nextID++
	account.ID = m.nextID
	profile.AccountID = account.ID
	m.accounts[account.Username] = account
	m.companies[account.ID] = profile
	return nil
}

func (m *MockIdentityRepo) GetCustomerByAccountID(ctx context.Context, accountID uint) (*models.CustomerProfile, error) {
	if p, ok := m.customers[accountID]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

func (m *MockIdentityRepo) GetCompanyByAccountID(ctx context.Context, accountID uint) (*models.CompanyProfile, error) {
	if p, ok := m.companies[accountID]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

// --------------------------------------------------
// RegisterCustomer
// --------------------------------------------------

func validCustomerInput() ucidentity.RegisterCustomerInput {
	return ucidentity.RegisterCustomerInput{
		Username:  "maria",
		Email:     "maria@example.com",
		Password:  "correct-horse",
		BirthDate: time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegisterCustomer(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCustomer(repo, nil)

	account, profile, err := uc.Execute(context.Background(), validCustomerInput())
	require.NoError(t, err)
	require.Equal(t, models.RoleCustomer, account.Role)
	require.Equal(t, "maria", account.Username)
	require.Equal(t, account.ID, profile.AccountID)

	// credential is stored hashed, never verbatim
	require.NotEqual(t, "correct-horse", account.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash), []byte("correct-horse")))
}

func TestRegisterCustomerNormalizesEmail(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCustomer(repo, nil)

	in := validCustomerInput()
	in.Email = "  Maria@Example.COM "

	account, _, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", account.Email)
}

func TestRegisterCustomerDuplicateEmail(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCustomer(repo, nil)

	_, _, err := uc.Execute(context.Background(), validCustomerInput())
	require.NoError(t, err)

	in := validCustomerInput()
	in.Username = "othermaria"
	_, _, err = uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))
}

func TestRegisterCustomerDuplicateUsername(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCustomer(repo, nil)

	_, _, err := uc.Execute(context.Background(), validCustomerInput())
	require.NoError(t, err)

	in := validCustomerInput()
	in.Email = "other@example.com"
	_, _, err = uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeUsernameTaken))
}

func TestRegisterCustomerFutureBirthDate(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCustomer(repo, nil)

	in := validCustomerInput()
	in.BirthDate = time.Now().UTC().AddDate(0, 0, 1)

	_, _, err := uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeInvalidBirthDate))
	require.Empty(t, repo.accounts)
}

func TestRegisterCustomerWeakPassword(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCustomer(repo, nil)

	in := validCustomerInput()
	in.Password = "12345678"

	_, _, err := uc.Execute(context.Background(), in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeWeakPassword))
}

// --------------------------------------------------
// RegisterCompany
// --------------------------------------------------

func TestRegisterCompany(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCompany(repo, nil)

	account, profile, err := uc.Execute(context.Background(), ucidentity.RegisterCompanyInput{
		Username: "fastpipes",
		Email:    "contact@fastpipes.com",
		Password: "strong-password",
		Field:    "Plumbing",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleCompany, account.Role)
	require.Equal(t, "Plumbing", profile.Field)
	require.Equal(t, 0, profile.Rating)
}

func TestRegisterCompanyAllInOneField(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCompany(repo, nil)

	_, profile, err := uc.Execute(context.Background(), ucidentity.RegisterCompanyInput{
		Username: "doitall",
		Email:    "contact@doitall.com",
		Password: "strong-password",
		Field:    "All in One",
	})
	require.NoError(t, err)
	require.Equal(t, "All in One", profile.Field)
}

func TestRegisterCompanyUnknownField(t *testing.T) {
	repo := NewMockIdentityRepo()
	uc := ucidentity.NewRegisterCompany(repo, nil)

	_, _, err := uc.Execute(context.Background(), ucidentity.RegisterCompanyInput{
		Username: "mystic",
		Email:    "contact@mystic.com",
		Password: "strong-password",
		Field:    "Astrology",
	})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	require.Equal(t, httperr.CodeValidation, be.Code)
	require.Equal(t, "field", be.Field)
}
