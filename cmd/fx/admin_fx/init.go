package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"possuite/internal/api/controllers"
	"possuite/internal/repositories"
	"possuite/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService, provideAdminController)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(
	planRepo repositories.IPlanRepository,
	subRepo repositories.SubscriptionRepository,
	accountRepo repositories.AccountRepository,
	adminRepo repositories.AdminRepository,
	mailService services.IMailService,
) services.AdminService {
	return services.NewAdminService(planRepo, subRepo, accountRepo, adminRepo, mailService)
}

func provideAdminController(adminService services.AdminService) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
