package request_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domain "github.com/homehands/marketplace-api/internal/domain/request"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
	ucrequest "github.com/homehands/marketplace-api/internal/usecase/request"
)

// MockRequestRepo implements request.Repository in memory.
type MockRequestRepo struct {
	customers map[uint]*models.CustomerProfile // by account id
	services  map[uint]*models.Service
	requests  []models.ServiceRequest

	nextID uint
}

func NewMockRequestRepo() *MockRequestRepo {
	return &MockRequestRepo{
		customers: map[uint]*models.CustomerProfile{},
		services:  map[uint]*models.Service{},
	}
}

func (m *MockRequestRepo) GetCustomerByAccountID(ctx context.Context, accountID uint) (*models.CustomerProfile, error) {
	if c, ok := m.customers[accountID]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

func (m *MockRequestRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}

func (m *MockRequestRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	m.nextID++
	req.ID = m.nextID
	req.RequestedAt = time.Now()
	m.requests = append(m.requests, *req)
	return nil
}

func (m *MockRequestRepo) ListRequestsForCustomer(ctx context.Context, customerID uint) ([]models.ServiceRequest, error) {
	var out []models.ServiceRequest
	for i := len(m.requests) - 1; i >= 0; i-- {
		if m.requests[i].CustomerID == customerID {
			req := m.requests[i]
			req.Service = *m.services[req.ServiceID]
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *MockRequestRepo) seed() {
	m.customers[1] = &models.CustomerProfile{ID: 10, AccountID: 1}
	m.services[5] = &models.Service{
		ID:           5,
		Name:         "Pipe Repair",
		Field:        "Plumbing",
		PricePerHour: decimal.RequireFromString("49.90"),
	}
}

// --------------------------------------------------
// CreateRequest
// --------------------------------------------------

func TestCreateRequest(t *testing.T) {
	repo := NewMockRequestRepo()
	repo.seed()
	uc := ucrequest.NewCreateRequest(repo, nil)

	req, err := uc.Execute(context.Background(), ucrequest.CreateRequestInput{
		AccountID: 1,
		ServiceID: 5,
		Address:   " 12 Main Street ",
		Hours:     3,
	})
	require.NoError(t, err)
	require.Equal(t, uint(10), req.CustomerID)
	require.Equal(t, "12 Main Street", req.Address)
	require.NotEmpty(t, req.Reference)

	cost := domain.Cost(req, &req.Service)
	require.True(t, decimal.RequireFromString("149.70").Equal(cost))
}

func TestCreateRequestWithoutCustomerProfile(t *testing.T) {
	repo := NewMockRequestRepo()
	repo.seed()
	uc := ucrequest.NewCreateRequest(repo, nil)

	_, err := uc.Execute(context.Background(), ucrequest.CreateRequestInput{
		AccountID: 99,
		ServiceID: 5,
		Address:   "12 Main Street",
		Hours:     3,
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestCreateRequestUnknownService(t *testing.T) {
	repo := NewMockRequestRepo()
	repo.seed()
	uc := ucrequest.NewCreateRequest(repo, nil)

	_, err := uc.Execute(context.Background(), ucrequest.CreateRequestInput{
		AccountID: 1,
		ServiceID: 404,
		Address:   "12 Main Street",
		Hours:     3,
	})
	require.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCreateRequestInvalidHours(t *testing.T) {
	repo := NewMockRequestRepo()
	repo.seed()
	uc := ucrequest.NewCreateRequest(repo, nil)

	_, err := uc.Execute(context.Background(), ucrequest.CreateRequestInput{
		AccountID: 1,
		ServiceID: 5,
		Address:   "12 Main Street",
		Hours:     0,
	})
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	require.Equal(t, "hours", be.Field)
	require.Empty(t, repo.requests)
}

// --------------------------------------------------
// ListForCustomer
// --------------------------------------------------

func TestListForCustomerNewestFirst(t *testing.T) {
	repo := NewMockRequestRepo()
	repo.seed()
	create := ucrequest.NewCreateRequest(repo, nil)

	for i := 0; i < 3; i++ {
		_, err := create.Execute(context.Background(), ucrequest.CreateRequestInput{
			AccountID: 1,
			ServiceID: 5,
			Address:   "12 Main Street",
			Hours:     i + 1,
		})
		require.NoError(t, err)
	}

	uc := ucrequest.NewListForCustomer(repo)
	orders, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Equal(t, 3, orders[0].Hours)
	require.Equal(t, 1, orders[2].Hours)
}

func TestListForCustomerWithoutProfile(t *testing.T) {
	repo := NewMockRequestRepo()
	uc := ucrequest.NewListForCustomer(repo)

	_, err := uc.Execute(context.Background(), 42)
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}
