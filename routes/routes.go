package routes

import (
	"github.com/pratik117-dev/restaurant-site-backend/configs"
	"github.com/pratik117-dev/restaurant-site-backend/controllers"
	"github.com/pratik117-dev/restaurant-site-backend/middlewares"
	"github.com/pratik117-dev/restaurant-site-backend/pkg/mailer"
	"github.com/pratik117-dev/restaurant-site-backend/repository"
	"github.com/pratik117-dev/restaurant-site-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mail mailer.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOtpRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, otpRepo, mail, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, cartRepo)
	deliverySvc := services.NewDeliveryService(deliveryRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, deliverySvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret, false)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, true)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/verify-otp", authCtrl.VerifyOTP)
		a.POST("/resend-otp", authCtrl.ResendOTP)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", authed, authCtrl.Me)

	// Public catalog + delivery toggle state
	r.GET("/menu", menuCtrl.List)
	r.GET("/delivery-status", adminCtrl.DeliveryStatus)

	// Cart (user)
	cart := r.Group("/cart", authed)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	u := r.Group("/orders", authed)
	{
		u.GET("", orderCtrl.ListForMe)
		u.POST("", orderCtrl.Create)
		u.PATCH("/:id/checkout", orderCtrl.CheckoutPatch)
	}

	// Admin
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/download", adminCtrl.DownloadOrders)
		admin.PATCH("/orders/:id", adminCtrl.UpdateOrder)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)

		admin.GET("/menu", menuCtrl.List)
		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.PATCH("/delivery-status", adminCtrl.UpdateDeliveryStatus)
	}
}
