package payment_fx

import (
	"fmt"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"os"
	"possuite/internal/api/controllers"
	"possuite/internal/integration/paystack"
	"possuite/internal/repositories"
	"possuite/internal/services"
)

var Module = fx.Provide(
	provideGateway, providePaymentRepo, providePaymentService, providePaymentController)

// A missing gateway secret is a startup failure, not a per-request one.
func provideGateway() (paystack.API, error) {
	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("PAYSTACK_SECRET_KEY not configured")
	}

	return paystack.NewClient(paystack.Config{
		SecretKey: secretKey,
		BaseURL:   os.Getenv("PAYSTACK_BASE_URL"),
	}), nil
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	gateway paystack.API,
	planRepo repositories.IPlanRepository,
	paymentRepo repositories.PaymentRepository,
	subRepo repositories.SubscriptionRepository,
) services.PaymentService {
	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "GHS"
	}

	return services.NewPaymentService(gateway, planRepo, paymentRepo, subRepo, services.CheckoutConfig{
		Currency:   currency,
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
