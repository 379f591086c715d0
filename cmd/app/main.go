package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"possuite/cmd/fx/account_fx"
	"possuite/cmd/fx/admin_fx"
	"possuite/cmd/fx/db_fx"
	"possuite/cmd/fx/mail_fx"
	"possuite/cmd/fx/payment_fx"
	"possuite/cmd/fx/plan_fx"
	"possuite/cmd/fx/subscription_fx"
	"possuite/internal/api/controllers"
	"possuite/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		subscription_fx.Module,
		payment_fx.Module,
		mail_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at :" + os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, planController, subscriptionController, paymentController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	r.GET("/plans", planController.ListPlans)

	subscriptionGroup := r.Group("/subscriptions")
	subscriptionGroup.Use(middleware.JWTAuthMiddleware())
	subscriptionGroup.POST("/trial", subscriptionController.ActivateTrial)

	paymentGroup := r.Group("/payments")
	paymentGroup.Use(middleware.JWTAuthMiddleware())
	paymentGroup.POST("/initialize", paymentController.InitializeCheckout)
	paymentGroup.POST("/verify", paymentController.VerifyPayment)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.POST("/grant-subscription", adminController.GrantSubscription)
	adminGroup.POST("/send-notification", adminController.SendNotification)
	adminGroup.GET("/data", adminController.GetAdminData)
}
