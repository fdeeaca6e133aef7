package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/middleware"
	ucidentity "github.com/homehands/marketplace-api/internal/usecase/identity"
)

type ProfileHandler struct {
	getProfile *ucidentity.GetProfile
}

func NewProfileHandler(getProfile *ucidentity.GetProfile) *ProfileHandler {
	return &ProfileHandler{getProfile: getProfile}
}

// GetByUsername serves /profiles/:username. Company profiles are public;
// customer profiles only for the owner or staff, so the route runs behind
// the optional-auth middleware.
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")

	viewer := ucidentity.Viewer{}
	if v, ok := c.Get(middleware.ContextAccountID); ok {
		viewer.AccountID = v.(uint)
	}
	if v, ok := c.Get(middleware.ContextIsStaff); ok {
		viewer.IsStaff = v.(bool)
	}

	profile, err := h.getProfile.Execute(c.Request.Context(), username, viewer)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_get_profile", "Could not load profile.")
		return
	}

	c.JSON(http.StatusOK, profileJSON(profile))
}

func profileJSON(p *ucidentity.Profile) gin.H {
	out := gin.H{
		"account": gin.H{
			"id":       p.Account.ID,
			"username": p.Account.Username,
			"role":     p.Account.Role,
		},
	}

	if p.Customer != nil {
		out["profile"] = gin.H{
			"birth_date": p.Customer.BirthDate.Format("2006-01-02"),
			"age":        p.Age,
		}
	}
	if p.Company != nil {
		out["profile"] = gin.H{
			"field":  p.Company.Field,
			"rating": p.Company.Rating,
		}
	}

	return out
}
