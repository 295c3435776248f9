package billing_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"lookbook/internal/api/controllers"
	"lookbook/internal/repositories"
	"lookbook/internal/services"
)

// Read lazily so godotenv.Load in main has already run.
func billingCfgFromEnv() services.BillingConfig {
	return services.BillingConfig{
		MonthlyPriceID: os.Getenv("BILLING_PRICE_MONTHLY"),
		YearlyPriceID:  os.Getenv("BILLING_PRICE_YEARLY"),
		WebhookSecret:  os.Getenv("BILLING_WEBHOOK_SECRET"),
		SuccessURL:     os.Getenv("BILLING_SUCCESS_URL"),
		CancelURL:      os.Getenv("BILLING_CANCEL_URL"),
		ProviderName:   "lemonpay",
	}
}

var Module = fx.Provide(
	provideBillingGateway, provideBillingService, provideBillingController)

func provideBillingGateway() services.BillingGateway {
	return services.NewHTTPBillingGateway(services.BillingGatewayConfig{
		APIBase: os.Getenv("BILLING_API_BASE"),
		APIKey:  os.Getenv("BILLING_API_KEY"),
	})
}

func provideBillingService(
	gateway services.BillingGateway,
	accountRepo repositories.AccountRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	mail services.IMailService,
) services.BillingServiceInterface {
	instance, err := services.NewBillingService(billingCfgFromEnv(), gateway, accountRepo, subscriptionRepo, mail)
	if err != nil {
		// Webhooks must never hit a half-built service.
		log.Fatalf("Error initializing BillingService: %v", err)
	}

	return instance
}

func provideBillingController(billingService services.BillingServiceInterface) *controllers.BillingController {
	return controllers.NewBillingController(billingService)
}
