package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lookbook/internal/api/controllers"
	"lookbook/internal/repositories"
	"lookbook/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	planRepo repositories.OutfitPlanRepository,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, planRepo)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
