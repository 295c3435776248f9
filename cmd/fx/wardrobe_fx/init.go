package wardrobe_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lookbook/internal/api/controllers"
	"lookbook/internal/repositories"
	"lookbook/internal/services"
	"lookbook/pkg/utils"
)

var Module = fx.Provide(
	provideGarmentRepo, provideEmbeddingRepo, provideGarmentService, provideGarmentController)

func provideGarmentRepo(db *gorm.DB) repositories.GarmentRepository {
	return repositories.NewGarmentRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.IGarmentEmbeddingRepository {
	return repositories.NewGarmentEmbeddingRepository(db)
}

func provideGarmentService(
	garmentRepo repositories.GarmentRepository,
	embeddingRepo repositories.IGarmentEmbeddingRepository,
	entitlementService services.EntitlementServiceInterface,
	stylist utils.StylistClientInterface,
) services.GarmentServiceInterface {
	return services.NewGarmentService(garmentRepo, embeddingRepo, entitlementService, stylist)
}

func provideGarmentController(
	garmentService services.GarmentServiceInterface,
	outfitService services.OutfitServiceInterface,
) *controllers.GarmentController {
	return controllers.NewGarmentController(garmentService, outfitService)
}
