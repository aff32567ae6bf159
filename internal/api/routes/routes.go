package routes

import (
	"context"
	"log"

	"broadcast-ops-backend/internal/api/handlers"
	"broadcast-ops-backend/internal/api/middleware"
	"broadcast-ops-backend/internal/auth"
	"broadcast-ops-backend/internal/config"
	"broadcast-ops-backend/internal/events"
	"broadcast-ops-backend/internal/logger"
	"broadcast-ops-backend/internal/repository"
	"broadcast-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Realtime hub; clients subscribe on the workflow-hub endpoint
	hub := events.NewHub(logger.New())
	go hub.Run(context.Background())

	// Repositories
	requestRepo := repository.NewRequestRepository(db)
	transitionRepo := repository.NewWorkflowTransitionRepository(db)
	allocationRepo := repository.NewResourceAllocationRepository(db)
	callsheetRepo := repository.NewCallsheetRepository(db)
	callsheetTransitionRepo := repository.NewCallsheetTransitionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	bookingService := service.NewBookingWorkflowService(requestRepo, transitionRepo, allocationRepo, hub, validator)
	callsheetService := service.NewCallsheetService(callsheetRepo, callsheetTransitionRepo, hub, validator)
	notificationService := service.NewNotificationService(notificationRepo)

	// Role resolution: LDAP when configured, static mapping otherwise
	var resolver auth.RoleResolver
	var err error
	if cfg.LDAPEnabled() {
		resolver, err = auth.NewLDAPRoleResolver(cfg)
	} else {
		resolver, err = auth.NewStaticRoleResolver(cfg.RoleMappingFile)
	}
	var authHandler *handlers.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if err != nil {
		log.Printf("Warning: role resolver unavailable, API runs unauthenticated: %v", err)
	} else {
		authService := auth.NewAuthService(cfg.JWTSecret, resolver)
		authHandler = handlers.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	requestHandler := handlers.NewRequestHandler(bookingService)
	callsheetHandler := handlers.NewCallsheetHandler(callsheetService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		router.POST("/api/auth/login", authHandler.Login)
	}

	// API v1 routes. Workflow operations run under the operation deadline;
	// the realtime hub stays outside it, websocket sessions are long-lived.
	opTimeout := middleware.Timeout(cfg.OperationTimeout())
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Booking request routes
		requests := v1.Group("/requests")
		requests.Use(opTimeout)
		{
			requests.GET("", requestHandler.ListRequests)
			requests.POST("", requestHandler.CreateRequest)
			requests.GET("/:id", requestHandler.GetRequest)
			requests.GET("/:id/state", requestHandler.GetState)
			requests.GET("/:id/history", requestHandler.GetHistory)
			requests.GET("/:id/allocations", requestHandler.GetAllocations)
			requests.POST("/:id/submit", requestHandler.Submit)
			requests.POST("/:id/acknowledge", requestHandler.Acknowledge)
			requests.POST("/:id/assign-resources", requestHandler.AssignResources)
			requests.POST("/:id/request-clarification", requestHandler.RequestClarification)
			requests.POST("/:id/forward-to-ingest", requestHandler.ForwardToIngest)
			requests.POST("/:id/complete", requestHandler.MarkCompleted)
			requests.POST("/:id/not-done", requestHandler.MarkNotDone)
		}

		// Call-sheet routes
		callsheets := v1.Group("/callsheets")
		callsheets.Use(opTimeout)
		{
			callsheets.GET("", callsheetHandler.ListCallsheets)
			callsheets.POST("", callsheetHandler.CreateCallsheet)
			callsheets.GET("/:id", callsheetHandler.GetCallsheet)
			callsheets.GET("/:id/history", callsheetHandler.GetHistory)
			callsheets.POST("/:id/equipment", callsheetHandler.SubmitEquipment)
			callsheets.POST("/:id/approve", callsheetHandler.Approve)
			callsheets.POST("/:id/request-clarification", callsheetHandler.RequestClarification)
		}

		// Notification-center routes
		notifications := v1.Group("/notifications")
		notifications.Use(opTimeout)
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		// Realtime event stream
		v1.GET("/workflow-hub", hub.ServeWS)
	}

	return router
}
