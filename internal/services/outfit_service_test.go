package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/internal/models/response_models"
	"lookbook/pkg/utils"
)

type outfitFixture struct {
	svc         OutfitServiceInterface
	accountID   uuid.UUID
	garmentRepo *fakeGarmentRepo
	planRepo    *fakePlanRepo
	stylist     *fakeStylist
	weather     *fakeWeather
}

func newOutfitFixture(t *testing.T, garmentCount int) *outfitFixture {
	t.Helper()

	accountRepo := newFakeAccountRepo()
	account := accountRepo.add(&dbm.Account{Email: "a@b.c", City: "Berlin", Language: "en"})

	garmentRepo := &fakeGarmentRepo{}
	categories := []dbm.GarmentCategory{
		dbm.CategoryTop, dbm.CategoryBottom, dbm.CategoryShoes,
		dbm.CategoryOuterwear, dbm.CategoryAccessory,
	}
	for i := 0; i < garmentCount; i++ {
		garmentRepo.add(account.ID, fmt.Sprintf("garment-%d", i), categories[i%len(categories)])
	}

	planRepo := &fakePlanRepo{}
	stylist := &fakeStylist{}
	weather := &fakeWeather{
		current: &response_models.WeatherSnapshot{City: "Berlin", TempC: 8, Description: "light rain", RainLikely: true},
	}
	for day := 0; day < 7; day++ {
		weather.forecast = append(weather.forecast, response_models.WeatherSnapshot{
			City: "Berlin", Date: fmt.Sprintf("2025-06-%02d", 16+day), TempC: float64(10 + day),
		})
	}

	return &outfitFixture{
		svc:         NewOutfitService(accountRepo, garmentRepo, &fakeEmbeddingRepo{}, planRepo, stylist, weather),
		accountID:   account.ID,
		garmentRepo: garmentRepo,
		planRepo:    planRepo,
		stylist:     stylist,
		weather:     weather,
	}
}

func (f *outfitFixture) modelOutput(ids ...string) string {
	out := `{"outfits":[{"occasion":"work","garment_ids":[`
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", id)
	}
	return out + `],"notes":"layer up"}]}`
}

func TestGenerateOutfit_RequiresMinimumWardrobe(t *testing.T) {
	f := newOutfitFixture(t, 2)

	_, err := f.svc.GenerateOutfit(context.Background(), f.accountID, request_models.GenerateOutfitRequest{Occasion: "work"})

	assert.ErrorIs(t, err, utils.ErrInsufficientWardrobe)
	// The wardrobe check fires before any model call.
	assert.Zero(t, f.stylist.generateCalls)
}

func TestGenerateOutfit_WeatherFailureBeforeModel(t *testing.T) {
	f := newOutfitFixture(t, 3)
	f.weather.err = utils.ErrWeatherUnavailable

	_, err := f.svc.GenerateOutfit(context.Background(), f.accountID, request_models.GenerateOutfitRequest{Occasion: "work"})

	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
	assert.Zero(t, f.stylist.generateCalls)
}

func TestGenerateOutfit_ParsesFencedOutputAndMergesWeather(t *testing.T) {
	f := newOutfitFixture(t, 4)
	ids := []string{f.garmentRepo.garments[0].ID.String(), f.garmentRepo.garments[1].ID.String()}
	f.stylist.generateOutput = "```json\n" + f.modelOutput(ids...) + "\n```"

	plan, err := f.svc.GenerateOutfit(context.Background(), f.accountID, request_models.GenerateOutfitRequest{Occasion: "work"})
	require.NoError(t, err)

	require.Len(t, plan.Outfits, 1)
	entry := plan.Outfits[0]
	assert.Equal(t, ids, entry.GarmentIDs)
	assert.Equal(t, "work", entry.Occasion)
	assert.Equal(t, "Berlin", entry.Weather.City)
	assert.InDelta(t, 8.0, entry.Weather.TempC, 0.01)

	// The referenced garments were resolved to full views.
	require.Len(t, entry.Garments, 2)
	assert.Equal(t, "garment-0", entry.Garments[0].Name)

	// Plan persisted and readable back.
	require.Len(t, f.planRepo.plans, 1)
	stored, err := f.svc.GetPlan(context.Background(), f.accountID, f.planRepo.plans[0].ID)
	require.NoError(t, err)
	assert.Equal(t, plan.PlanID, stored.PlanID)
}

func TestGenerateOutfit_MalformedModelOutput(t *testing.T) {
	f := newOutfitFixture(t, 3)
	f.stylist.generateOutput = "Sure! Here are some great outfit ideas for you."

	_, err := f.svc.GenerateOutfit(context.Background(), f.accountID, request_models.GenerateOutfitRequest{Occasion: "work"})

	assert.ErrorIs(t, err, utils.ErrMalformedGenerationOutput)
	assert.Empty(t, f.planRepo.plans)
}

func TestGenerateOutfit_IgnoresUnknownGarmentIDs(t *testing.T) {
	f := newOutfitFixture(t, 3)
	known := f.garmentRepo.garments[0].ID.String()
	f.stylist.generateOutput = f.modelOutput(known, uuid.NewString())

	plan, err := f.svc.GenerateOutfit(context.Background(), f.accountID, request_models.GenerateOutfitRequest{Occasion: "work"})
	require.NoError(t, err)

	// Unknown ids stay in the id list but resolve to no garment view.
	require.Len(t, plan.Outfits, 1)
	assert.Len(t, plan.Outfits[0].GarmentIDs, 2)
	assert.Len(t, plan.Outfits[0].Garments, 1)
}

func TestGenerateWeeklyPlan_RequiresFiveGarments(t *testing.T) {
	f := newOutfitFixture(t, 4)

	_, err := f.svc.GenerateWeeklyPlan(context.Background(), f.accountID, request_models.GenerateWeeklyPlanRequest{Occasion: "casual"})

	assert.ErrorIs(t, err, utils.ErrInsufficientWardrobe)
	assert.Zero(t, f.stylist.generateCalls)
}

func TestGenerateWeeklyPlan_MergesForecastPerDay(t *testing.T) {
	f := newOutfitFixture(t, 6)

	out := `{"outfits":[`
	for day := 0; day < 7; day++ {
		if day > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"day":"day-%d","garment_ids":[%q],"notes":"n"}`,
			day, f.garmentRepo.garments[day%6].ID.String())
	}
	out += `]}`
	f.stylist.generateOutput = out

	plan, err := f.svc.GenerateWeeklyPlan(context.Background(), f.accountID, request_models.GenerateWeeklyPlanRequest{Occasion: "casual"})
	require.NoError(t, err)

	require.Len(t, plan.Outfits, 7)
	for day, entry := range plan.Outfits {
		assert.InDelta(t, float64(10+day), entry.Weather.TempC, 0.01, "day %d weather", day)
		assert.Equal(t, "casual", entry.Occasion)
	}
	assert.Equal(t, string(dbm.PlanKindWeekly), plan.Kind)
}

func TestAnalyzeGarmentPhoto(t *testing.T) {
	f := newOutfitFixture(t, 3)

	t.Run("valid analysis", func(t *testing.T) {
		f.stylist.analyzeOutput = "```json\n{\"name\":\"denim jacket\",\"category\":\"outerwear\",\"color\":\"blue\",\"style\":\"casual\",\"seasons\":[\"spring\",\"autumn\"]}\n```"

		analysis, err := f.svc.AnalyzeGarmentPhoto(context.Background(), f.accountID, "https://img.example/1.jpg")
		require.NoError(t, err)
		assert.Equal(t, "denim jacket", analysis.Name)
		assert.Equal(t, "outerwear", analysis.Category)
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		f.stylist.analyzeOutput = `{"name":"thing","category":"spaceship","color":"grey"}`

		_, err := f.svc.AnalyzeGarmentPhoto(context.Background(), f.accountID, "https://img.example/1.jpg")
		assert.ErrorIs(t, err, utils.ErrMalformedGenerationOutput)
	})

	t.Run("missing image url", func(t *testing.T) {
		_, err := f.svc.AnalyzeGarmentPhoto(context.Background(), f.accountID, "")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestGetPlan_OwnershipEnforced(t *testing.T) {
	f := newOutfitFixture(t, 3)
	f.stylist.generateOutput = f.modelOutput(f.garmentRepo.garments[0].ID.String())

	_, err := f.svc.GenerateOutfit(context.Background(), f.accountID, request_models.GenerateOutfitRequest{Occasion: "work"})
	require.NoError(t, err)

	_, err = f.svc.GetPlan(context.Background(), uuid.New(), f.planRepo.plans[0].ID)
	assert.ErrorIs(t, err, utils.ErrOutfitPlanNotFound)
}
