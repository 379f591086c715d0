package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"os"
	"possuite/internal/api/controllers"
	"possuite/internal/repositories"
	"possuite/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, os.Getenv("ADMIN_EMAIL"))
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
