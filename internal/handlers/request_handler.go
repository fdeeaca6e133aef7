package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/homehands/marketplace-api/internal/domain/request"
	"github.com/homehands/marketplace-api/internal/dto"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/httpresp"
	"github.com/homehands/marketplace-api/internal/middleware"
	ucrequest "github.com/homehands/marketplace-api/internal/usecase/request"
)

type RequestHandler struct {
	createRequest   *ucrequest.CreateRequest
	listForCustomer *ucrequest.ListForCustomer
}

func NewRequestHandler(
	createRequest *ucrequest.CreateRequest,
	listForCustomer *ucrequest.ListForCustomer,
) *RequestHandler {
	return &RequestHandler{
		createRequest:   createRequest,
		listForCustomer: listForCustomer,
	}
}

// --------- Requests ---------

type CreateServiceRequestRequest struct {
	Address string `json:"address" binding:"required"`
	Hours   int    `json:"hours" binding:"required,min=1"`
}

// --------- Handlers ---------

func (h *RequestHandler) Create(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be a number.")
		return
	}

	var req CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	order, err := h.createRequest.Execute(c.Request.Context(), ucrequest.CreateRequestInput{
		AccountID: accountID,
		ServiceID: uint(serviceID),
		Address:   req.Address,
		Hours:     req.Hours,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_create_request", "Could not request service.")
		return
	}

	c.JSON(http.StatusCreated, dto.RequestListDTO{
		ID:          order.ID,
		Reference:   order.Reference,
		ServiceID:   order.ServiceID,
		ServiceName: order.Service.Name,
		Address:     order.Address,
		Hours:       order.Hours,
		Cost:        domain.Cost(order, &order.Service),
		RequestedAt: order.RequestedAt,
	})
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	orders, err := h.listForCustomer.Execute(c.Request.Context(), accountID)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_list_requests", "Could not list your requests.")
		return
	}

	out := make([]dto.RequestListDTO, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		out = append(out, dto.RequestListDTO{
			ID:          order.ID,
			Reference:   order.Reference,
			ServiceID:   order.ServiceID,
			ServiceName: order.Service.Name,
			Address:     order.Address,
			Hours:       order.Hours,
			Cost:        domain.Cost(order, &order.Service),
			RequestedAt: order.RequestedAt,
		})
	}

	httpresp.List(c, out)
}
