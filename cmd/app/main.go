package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"lookbook/cmd/fx/account_fx"
	"lookbook/cmd/fx/billing_fx"
	"lookbook/cmd/fx/dashboard_fx"
	"lookbook/cmd/fx/db_fx"
	"lookbook/cmd/fx/entitlement_fx"
	"lookbook/cmd/fx/feedback_fx"
	"lookbook/cmd/fx/mail_fx"
	"lookbook/cmd/fx/memcache_fx"
	"lookbook/cmd/fx/outfit_fx"
	"lookbook/cmd/fx/stylist_fx"
	"lookbook/cmd/fx/wardrobe_fx"
	"lookbook/internal/api/controllers"
	"lookbook/internal/services"
	"lookbook/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		stylist_fx.Module,
		entitlement_fx.Module,
		account_fx.Module,
		billing_fx.Module,
		wardrobe_fx.Module,
		outfit_fx.Module,
		dashboard_fx.Module,
		feedback_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	garmentController *controllers.GarmentController,
	outfitController *controllers.OutfitController,
	billingController *controllers.BillingController,
	entitlementController *controllers.EntitlementController,
	dashboardController *controllers.DashboardController,
	feedbackController *controllers.FeedbackController,
	entitlementService services.EntitlementServiceInterface,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		garmentController,
		outfitController,
		billingController,
		entitlementController,
		dashboardController,
		feedbackController,
		entitlementService)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	garmentController *controllers.GarmentController,
	outfitController *controllers.OutfitController,
	billingController *controllers.BillingController,
	entitlementController *controllers.EntitlementController,
	dashboardController *controllers.DashboardController,
	feedbackController *controllers.FeedbackController,
	entitlementService services.EntitlementServiceInterface) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/verify-otp", accountController.VerifyOtpToken)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.GetProfile)
	accounts.PUT("/me", middleware.JWTAuthMiddleware(), accountController.UpdateProfile)

	// Webhook authenticates by signature, not by JWT.
	billing := r.Group("/billing")
	billing.POST("/webhook", billingController.HandleWebhook)
	billing.Use(middleware.JWTAuthMiddleware())
	billing.POST("/checkout", billingController.CreateCheckout)
	billing.POST("/portal", billingController.CreatePortal)
	billing.GET("/entitlement", entitlementController.GetEntitlement)

	wardrobe := r.Group("/wardrobe")
	wardrobe.Use(middleware.JWTAuthMiddleware())
	wardrobe.Use(middleware.RequireFeature(entitlementService, services.FeatureWardrobe))
	wardrobe.POST("", garmentController.CreateGarment)
	wardrobe.GET("", garmentController.ListGarments)
	wardrobe.GET("/:id", garmentController.GetGarment)
	wardrobe.PUT("/:id", garmentController.UpdateGarment)
	wardrobe.DELETE("/:id", garmentController.DeleteGarment)
	// Photo analysis ships under the image-generation feature, so trial
	// accounts can onboard their wardrobe from photos.
	wardrobe.POST("/analyze",
		middleware.RequireFeature(entitlementService, services.FeatureImageGeneration),
		garmentController.AnalyzeGarment)

	outfits := r.Group("/outfits")
	outfits.Use(middleware.JWTAuthMiddleware())
	outfits.POST("/generate",
		middleware.RequireFeature(entitlementService, services.FeatureOutfit),
		outfitController.GenerateOutfit)
	outfits.POST("/weekly",
		middleware.RequireFeature(entitlementService, services.FeatureWeeklyPlanner),
		outfitController.GenerateWeeklyPlan)
	outfits.GET("", outfitController.ListPlans)
	outfits.GET("/:id", outfitController.GetPlan)

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.JWTAuthMiddleware())
	dashboard.GET("",
		middleware.RequireFeature(entitlementService, services.FeatureClosetStats),
		dashboardController.GetClosetDashboard)

	feedback := r.Group("/feedback")
	feedback.Use(middleware.JWTAuthMiddleware())
	feedback.POST("", feedbackController.SubmitFeedback)
	feedback.GET("/:planId", feedbackController.ListFeedback)
}
