package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookify-backend-go/internal/core"
	"bookify-backend-go/internal/db"
	"bookify-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is expected to be
// applied to the router before this is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	identityService core.IdentityService,
	catalogService core.CatalogService,
	bookingService core.BookingService,
	profileService core.ProfileService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured.")
		panic("Firebase Auth client is nil during route setup")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	serviceHandler := NewServiceHandler(catalogService)
	categoryHandler := NewCategoryHandler(catalogService)
	bookingHandler := NewBookingHandler(bookingService)
	profileHandler := NewProfileHandler(profileService)
	adminHandler := NewAdminHandler(identityService)

	// Public connectivity check used by the frontend.
	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "Hello from bookify backend"})
	})

	api := router.Group("/api")
	{
		// Service catalog: reads are public, mutations are admin-gated in
		// the catalog service.
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.ListServices)
			services.GET("/:id", serviceHandler.GetService)
			services.POST("", authMW.VerifyToken(), serviceHandler.CreateService)
			services.PUT("/:id", authMW.VerifyToken(), serviceHandler.UpdateService)
			services.DELETE("/:id", authMW.VerifyToken(), serviceHandler.DeleteService)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", authMW.VerifyToken(), categoryHandler.CreateCategory)
			categories.DELETE("/:id", authMW.VerifyToken(), categoryHandler.DeleteCategory)
		}

		bookings := api.Group("/bookings", authMW.VerifyToken())
		{
			bookings.GET("", bookingHandler.ListBookings)
			bookings.POST("", bookingHandler.CreateBooking)
			// Registered before /:id so gin does not treat "admin" as an ID.
			bookings.GET("/admin", bookingHandler.ListAllBookings)
			bookings.PATCH("/:id", bookingHandler.UpdateBooking)
		}

		me := api.Group("/me", authMW.VerifyToken())
		{
			me.GET("", profileHandler.GetProfile)
			me.PUT("", profileHandler.UpdateProfile)
			me.GET("/stats", bookingHandler.GetBookingStats)
		}

		admin := api.Group("/admin", authMW.VerifyToken())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users/:id/role", adminHandler.SetUserRole)
		}
	}

	logger.Info("API routes configured successfully under /api and /status.")
}
