package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/homehands/marketplace-api/internal/config"
	"github.com/homehands/marketplace-api/internal/httperr"
	"github.com/homehands/marketplace-api/internal/models"
	ucidentity "github.com/homehands/marketplace-api/internal/usecase/identity"
	"github.com/homehands/marketplace-api/internal/validators"
)

type AuthHandler struct {
	registerCustomer *ucidentity.RegisterCustomer
	registerCompany  *ucidentity.RegisterCompany
	authenticate     *ucidentity.Authenticate
	config           *config.Config
}

func NewAuthHandler(
	registerCustomer *ucidentity.RegisterCustomer,
	registerCompany *ucidentity.RegisterCompany,
	authenticate *ucidentity.Authenticate,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		registerCustomer: registerCustomer,
		registerCompany:  registerCompany,
		authenticate:     authenticate,
		config:           cfg,
	}
}

// --------- Requests ---------

type RegisterCustomerRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
}

type RegisterCompanyRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Field    string `json:"field" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Birth date must be YYYY-MM-DD.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	account, profile, err := h.registerCustomer.Execute(c.Request.Context(), ucidentity.RegisterCustomerInput{
		Username:  req.Username,
		Email:     email,
		Password:  req.Password,
		BirthDate: birthDate,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_register", "Could not create account.")
		return
	}

	token, err := h.generateToken(account)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": accountJSON(account),
		"profile": gin.H{
			"birth_date": profile.BirthDate.Format("2006-01-02"),
		},
		"token": token,
	})
}

func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	account, profile, err := h.registerCompany.Execute(c.Request.Context(), ucidentity.RegisterCompanyInput{
		Username: req.Username,
		Email:    email,
		Password: req.Password,
		Field:    req.Field,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.WriteBusiness(c, be)
			return
		}
		httperr.Internal(c, "failed_to_register", "Could not create account.")
		return
	}

	token, err := h.generateToken(account)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": accountJSON(account),
		"profile": gin.H{
			"field":  profile.Field,
			"rating": profile.Rating,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	account, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials. Please try again.")
		return
	}

	token, err := h.generateToken(account)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": accountJSON(account),
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"role":  account.Role,
		"staff": account.IsStaff,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func accountJSON(account *models.Account) gin.H {
	return gin.H{
		"id":       account.ID,
		"username": account.Username,
		"email":    account.Email,
		"role":     account.Role,
	}
}
