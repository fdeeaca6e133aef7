package request

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/homehands/marketplace-api/internal/audit"
	domain "github.com/homehands/marketplace-api/internal/domain/request"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRequestInput struct {
	AccountID uint
	ServiceID uint

	Address string
	Hours   int
}

// ======================================================
// USE CASE
// ======================================================

type CreateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRequest {
	return &CreateRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateRequest) Execute(
	ctx context.Context,
	in CreateRequestInput,
) (*models.ServiceRequest, error) {

	// only accounts with a customer profile may order services
	customer, err := uc.repo.GetCustomerByAccountID(ctx, in.AccountID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	address := strings.TrimSpace(in.Address)
	if err := domain.ValidateOrder(address, in.Hours); err != nil {
		return nil, err
	}

	req := &models.ServiceRequest{
		Reference:  uuid.NewString(),
		ServiceID:  svc.ID,
		CustomerID: customer.ID,
		Address:    address,
		Hours:      in.Hours,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	req.Service = *svc

	uc.audit.Dispatch(audit.Event{
		AccountID: &in.AccountID,
		Action:    audit.ActionServiceRequested,
		Entity:    "service_request",
		EntityID:  &req.ID,
	})

	return req, nil
}
