package outfit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lookbook/internal/api/controllers"
	"lookbook/internal/repositories"
	"lookbook/internal/services"
	"lookbook/pkg/utils"
)

var Module = fx.Provide(
	provideOutfitPlanRepo, ProvideOutfitService, provideOutfitController)

func provideOutfitPlanRepo(db *gorm.DB) repositories.OutfitPlanRepository {
	return repositories.NewOutfitPlanRepository(db)
}

// ProvideOutfitService creates the orchestrator with all dependencies.
func ProvideOutfitService(
	accountRepo repositories.AccountRepository,
	garmentRepo repositories.GarmentRepository,
	embeddingRepo repositories.IGarmentEmbeddingRepository,
	planRepo repositories.OutfitPlanRepository,
	stylist utils.StylistClientInterface,
	weather utils.WeatherClientInterface,
) services.OutfitServiceInterface {
	return services.NewOutfitService(
		accountRepo,
		garmentRepo,
		embeddingRepo,
		planRepo,
		stylist,
		weather,
	)
}

func provideOutfitController(
	outfitService services.OutfitServiceInterface,
) *controllers.OutfitController {
	return controllers.NewOutfitController(outfitService)
}
