package entitlement_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lookbook/internal/api/controllers"
	"lookbook/internal/repositories"
	"lookbook/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideEntitlementService, provideEntitlementController)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideEntitlementService(
	accountRepo repositories.AccountRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) services.EntitlementServiceInterface {
	return services.NewEntitlementService(accountRepo, subscriptionRepo)
}

func provideEntitlementController(entitlementService services.EntitlementServiceInterface) *controllers.EntitlementController {
	return controllers.NewEntitlementController(entitlementService)
}
