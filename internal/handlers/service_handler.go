package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/homehands/marketplace-api/internal/domain/catalog"
	"github.com/homehands/marketplace-api/internal/dto"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/httpresp"
	"github.com/homehands/marketplace-api/internal/middleware"
	"github.com/homehands/marketplace-api/internal/models"
	uccatalog "github.com/homehands/marketplace-api/internal/usecase/catalog"
)

type ServiceHandler struct {
	createService  *uccatalog.CreateService
	listServices   *uccatalog.ListServices
	listByCategory *uccatalog.ListByCategory
	listForCompany *uccatalog.ListForCompany
	getService     *uccatalog.GetService
}

func NewServiceHandler(
	createService *uccatalog.CreateService,
	listServices *uccatalog.ListServices,
	listByCategory *uccatalog.ListByCategory,
	listForCompany *uccatalog.ListForCompany,
	getService *uccatalog.GetService,
) *ServiceHandler {
	return &ServiceHandler{
		createService:  createService,
		listServices:   listServices,
		listByCategory: listByCategory,
		listForCompany: listForCompany,
		getService:     getService,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Field        string          `json:"field" binding:"required"`
	PricePerHour decimal.Decimal `json:"price_per_hour" binding:"required"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	services, total, err := h.listServices.Execute(c.Request.Context(), page)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.Page(c, toServiceList(services), page, domain.PageSize, total)
}

func (h *ServiceHandler) ListByCategory(c *gin.Context) {
	field, services, err := h.listByCategory.Execute(c.Request.Context(), c.Param("field"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"field": field,
		"data":  toServiceList(services),
		"total": len(services),
	})
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	httpresp.List(c, domain.ServiceCategories())
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be a number.")
		return
	}

	svc, err := h.getService.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	httpresp.OK(c, dto.ServiceDetailDTO{
		ID:           svc.ID,
		Name:         svc.Name,
		Description:  svc.Description,
		Field:        svc.Field,
		PricePerHour: svc.PricePerHour,
		Company:      svc.Company.Account.Username,
		CreatedAt:    svc.CreatedAt,
	})
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	services, err := h.listForCompany.Execute(c.Request.Context(), accountID)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_list_services", "Could not list your services.")
		return
	}

	httpresp.List(c, toServiceList(services))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	svc, err := h.createService.Execute(c.Request.Context(), uccatalog.CreateServiceInput{
		AccountID:    accountID,
		Name:         req.Name,
		Description:  req.Description,
		Field:        req.Field,
		PricePerHour: req.PricePerHour,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// --------- Helpers ---------

func toServiceList(services []models.Service) []dto.ServiceListDTO {
	out := make([]dto.ServiceListDTO, 0, len(services))
	for _, svc := range services {
		out = append(out, dto.ServiceListDTO{
			ID:           svc.ID,
			Name:         svc.Name,
			Field:        svc.Field,
			PricePerHour: svc.PricePerHour,
			CreatedAt:    svc.CreatedAt,
		})
	}
	return out
}
