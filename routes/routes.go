package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/controllers"
	"github.com/rolemap/api-go/email"
	"github.com/rolemap/api-go/middleware"
	"github.com/rolemap/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage, mailer *email.Mailer) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	placeController := controllers.NewPlaceController(db, store)
	placeTypeController := controllers.NewPlaceTypeController(db)
	friendController := controllers.NewFriendController(db)
	feedController := controllers.NewFeedController(db)
	carouselController := controllers.NewCarouselController(db, store)
	passwordResetController := controllers.NewPasswordResetController(db, mailer)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/password-reset/request", passwordResetController.RequestReset)
		public.POST("/password-reset/verify", passwordResetController.VerifyReset)

		public.GET("/place-types", placeTypeController.ListPlaceTypes)
		public.GET("/places", placeController.ListPlaces)
		public.GET("/places/:id", placeController.GetPlace)
		public.GET("/carousel-images", carouselController.ListActiveImages)
	}

	// Session-protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(db))
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/user", authController.GetCurrentUser)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupPlaceRoutes(protected, placeController, placeTypeController)
		SetupFriendRoutes(protected, friendController, feedController)
	}

	// Admin routes
	admin := r.Group("/api")
	admin.Use(middleware.AuthMiddleware(db), middleware.AdminMiddleware())
	{
		SetupCarouselRoutes(admin, carouselController)
	}
}
