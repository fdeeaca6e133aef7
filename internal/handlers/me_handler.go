package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/homehands/marketplace-api/internal/domain/identity"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/middleware"
	"github.com/homehands/marketplace-api/internal/models"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(uint)

	account, err := h.repo.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		httperr.Internal(c, "account_not_found", "Could not load your account.")
		return
	}

	out := gin.H{
		"account": gin.H{
			"id":       account.ID,
			"username": account.Username,
			"email":    account.Email,
			"role":     account.Role,
			"is_staff": account.IsStaff,
		},
	}

	switch account.Role {
	case models.RoleCustomer:
		profile, err := h.repo.GetCustomerByAccountID(c.Request.Context(), account.ID)
		if err != nil {
			httperr.Internal(c, "profile_not_found", "Could not load your profile.")
			return
		}
		out["profile"] = gin.H{
			"birth_date": profile.BirthDate.Format("2006-01-02"),
			"age":        domain.Age(profile.BirthDate, time.Now().UTC()),
		}

	case models.RoleCompany:
		profile, err := h.repo.GetCompanyByAccountID(c.Request.Context(), account.ID)
		if err != nil {
			httperr.Internal(c, "profile_not_found", "Could not load your profile.")
			return
		}
		out["profile"] = gin.H{
			"field":  profile.Field,
			"rating": profile.Rating,
		}
	}

	c.JSON(http.StatusOK, out)
}
