package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homehands/marketplace-api/internal/audit"
	"github.com/homehands/marketplace-api/internal/config"
	"github.com/homehands/marketplace-api/internal/handlers"
	infraRepo "github.com/homehands/marketplace-api/internal/infra/repository"
	"github.com/homehands/marketplace-api/internal/middleware"
	ucCatalog "github.com/homehands/marketplace-api/internal/usecase/catalog"
	ucIdentity "github.com/homehands/marketplace-api/internal/usecase/identity"
	ucRequest "github.com/homehands/marketplace-api/internal/usecase/request"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	identityRepo := infraRepo.NewIdentityGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	requestRepo := infraRepo.NewRequestGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerCustomerUC := ucIdentity.NewRegisterCustomer(identityRepo, auditDispatcher)
	registerCompanyUC := ucIdentity.NewRegisterCompany(identityRepo, auditDispatcher)
	authenticateUC := ucIdentity.NewAuthenticate(identityRepo)
	getProfileUC := ucIdentity.NewGetProfile(identityRepo)

	createServiceUC := ucCatalog.NewCreateService(catalogRepo, auditDispatcher)
	listServicesUC := ucCatalog.NewListServices(catalogRepo)
	listByCategoryUC := ucCatalog.NewListByCategory(catalogRepo)
	listForCompanyUC := ucCatalog.NewListForCompany(catalogRepo)
	getServiceUC := ucCatalog.NewGetService(catalogRepo)

	createRequestUC := ucRequest.NewCreateRequest(requestRepo, auditDispatcher)
	listForCustomerUC := ucRequest.NewListForCustomer(requestRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerCustomerUC,
		registerCompanyUC,
		authenticateUC,
		cfg,
	)
	meHandler := handlers.NewMeHandler(identityRepo)
	profileHandler := handlers.NewProfileHandler(getProfileUC)

	serviceHandler := handlers.NewServiceHandler(
		createServiceUC,
		listServicesUC,
		listByCategoryUC,
		listForCompanyUC,
		getServiceUC,
	)

	requestHandler := handlers.NewRequestHandler(
		createRequestUC,
		listForCustomerUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register/customer", authHandler.RegisterCustomer)
		api.POST("/auth/register/company", authHandler.RegisterCompany)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/categories", serviceHandler.Categories)
		api.GET("/services/field/:field", serviceHandler.ListByCategory)
		api.GET("/services/:id", serviceHandler.Get)

		// customer profiles are gated on the caller, company ones public
		api.GET(
			"/profiles/:username",
			middleware.OptionalAuthMiddleware(cfg),
			profileHandler.GetByUsername,
		)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/services", serviceHandler.ListMine)
			secured.POST("/me/services", serviceHandler.Create)

			secured.GET("/me/requests", requestHandler.ListMine)
			secured.POST("/services/:id/request", requestHandler.Create)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
