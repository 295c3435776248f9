package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lookbook/internal/api/controllers"
	"lookbook/internal/repositories"
	"lookbook/internal/services"
	mem "lookbook/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	entitlementService services.EntitlementServiceInterface,
	otpStore mem.OtpStore,
	mailService services.IMailService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, entitlementService, otpStore, mailService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
