package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"possuite/internal/api/controllers"
	"possuite/internal/repositories"
	"possuite/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideTrialService, provideSubscriptionController)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideTrialService(planRepo repositories.IPlanRepository, subRepo repositories.SubscriptionRepository) services.TrialService {
	return services.NewTrialService(planRepo, subRepo)
}

func provideSubscriptionController(trialService services.TrialService) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(trialService)
}
