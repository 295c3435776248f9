package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/internal/models/response_models"
	"lookbook/internal/repositories"
	"lookbook/pkg/utils"
)

const (
	// Minimum active garments before any model call is made.
	MinGarmentsSingleDay = 3
	MinGarmentsWeekly    = 5

	weeklyDayCount = 7

	// Below this temperature the prompt requires an outer layer. Advisory:
	// the constraint lives in the prompt, not in post-validation.
	outerLayerTempC = 12.0
)

type OutfitServiceInterface interface {
	GenerateOutfit(ctx context.Context, accountID uuid.UUID, req request_models.GenerateOutfitRequest) (*response_models.OutfitPlanResponse, error)
	GenerateWeeklyPlan(ctx context.Context, accountID uuid.UUID, req request_models.GenerateWeeklyPlanRequest) (*response_models.OutfitPlanResponse, error)
	AnalyzeGarmentPhoto(ctx context.Context, accountID uuid.UUID, imageURL string) (*response_models.GarmentAnalysis, error)
	GetPlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) (*response_models.OutfitPlanResponse, error)
	ListPlans(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.OutfitPlanResponse, error)
}

type OutfitService struct {
	accountRepo   repositories.AccountRepository
	garmentRepo   repositories.GarmentRepository
	embeddingRepo repositories.IGarmentEmbeddingRepository
	planRepo      repositories.OutfitPlanRepository
	stylist       utils.StylistClientInterface
	weather       utils.WeatherClientInterface
}

func NewOutfitService(
	accountRepo repositories.AccountRepository,
	garmentRepo repositories.GarmentRepository,
	embeddingRepo repositories.IGarmentEmbeddingRepository,
	planRepo repositories.OutfitPlanRepository,
	stylist utils.StylistClientInterface,
	weather utils.WeatherClientInterface,
) OutfitServiceInterface {
	return &OutfitService{
		accountRepo:   accountRepo,
		garmentRepo:   garmentRepo,
		embeddingRepo: embeddingRepo,
		planRepo:      planRepo,
		stylist:       stylist,
		weather:       weather,
	}
}

func (o *OutfitService) GenerateOutfit(ctx context.Context, accountID uuid.UUID, req request_models.GenerateOutfitRequest) (*response_models.OutfitPlanResponse, error) {
	if strings.TrimSpace(req.Occasion) == "" {
		return nil, utils.ErrInvalidInput
	}

	account, err := o.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	garments, err := o.garmentRepo.ListActiveByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(garments) < MinGarmentsSingleDay {
		return nil, utils.ErrInsufficientWardrobe
	}

	snapshot, err := o.weather.GetCurrent(ctx, account.City)
	if err != nil {
		return nil, utils.ErrWeatherUnavailable
	}

	prompt := o.buildSingleDayPrompt(garments, snapshot, req.Occasion, req.StylePreference, account.Language)

	rawJSON, err := o.stylist.GenerateStructuredOutfits(ctx, prompt)
	if err != nil {
		log.Printf("outfit generation error: %v", err)
		return nil, utils.ErrMalformedGenerationOutput
	}

	entries, err := o.parseOutfits(rawJSON)
	if err != nil {
		return nil, err
	}

	garmentMap := buildGarmentMap(garments)
	for i := range entries {
		entries[i].Occasion = req.Occasion
		entries[i].Weather = *snapshot
		entries[i].Garments = resolveGarments(entries[i].GarmentIDs, garmentMap)
		entries[i].Alternatives = o.findAlternatives(ctx, req.Occasion+" "+req.StylePreference, entries[i].GarmentIDs, garmentMap)
	}

	plan, err := o.persistPlan(ctx, accountID, dbm.PlanKindSingleDay, req.Occasion, entries, snapshot)
	if err != nil {
		return nil, err
	}

	return &response_models.OutfitPlanResponse{
		PlanID:   plan.ID.String(),
		Kind:     string(dbm.PlanKindSingleDay),
		Occasion: req.Occasion,
		Outfits:  entries,
		Weather:  *snapshot,
	}, nil
}

func (o *OutfitService) GenerateWeeklyPlan(ctx context.Context, accountID uuid.UUID, req request_models.GenerateWeeklyPlanRequest) (*response_models.OutfitPlanResponse, error) {
	account, err := o.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	garments, err := o.garmentRepo.ListActiveByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(garments) < MinGarmentsWeekly {
		return nil, utils.ErrInsufficientWardrobe
	}

	forecast, err := o.weather.GetForecast(ctx, account.City, weeklyDayCount)
	if err != nil {
		return nil, utils.ErrWeatherUnavailable
	}

	prompt := o.buildWeeklyPrompt(garments, forecast, req, account.Language)

	rawJSON, err := o.stylist.GenerateStructuredOutfits(ctx, prompt)
	if err != nil {
		log.Printf("weekly plan generation error: %v", err)
		return nil, utils.ErrMalformedGenerationOutput
	}

	entries, err := o.parseOutfits(rawJSON)
	if err != nil {
		return nil, err
	}

	garmentMap := buildGarmentMap(garments)
	for i := range entries {
		// Merge the matching forecast day back into each entry; fall back to
		// the first day when the model returned fewer or unlabeled days.
		entries[i].Weather = forecast[0]
		if i < len(forecast) {
			entries[i].Weather = forecast[i]
		}
		if entries[i].Occasion == "" {
			entries[i].Occasion = req.Occasion
		}
		entries[i].Garments = resolveGarments(entries[i].GarmentIDs, garmentMap)
	}

	plan, err := o.persistPlan(ctx, accountID, dbm.PlanKindWeekly, req.Occasion, entries, &forecast[0])
	if err != nil {
		return nil, err
	}

	return &response_models.OutfitPlanResponse{
		PlanID:   plan.ID.String(),
		Kind:     string(dbm.PlanKindWeekly),
		Occasion: req.Occasion,
		Outfits:  entries,
		Weather:  forecast[0],
	}, nil
}

func (o *OutfitService) AnalyzeGarmentPhoto(ctx context.Context, accountID uuid.UUID, imageURL string) (*response_models.GarmentAnalysis, error) {
	if imageURL == "" {
		return nil, utils.ErrInvalidInput
	}

	instruction := `Identify the garment in the photo. Return JSON only, matching exactly:
{"name":"short descriptive name","category":"top|bottom|outerwear|shoes|accessory|dress","color":"dominant color","style":"casual|formal|sporty|smart-casual","seasons":["spring","summer","autumn","winter"]}`

	raw, err := o.stylist.AnalyzeGarmentImage(ctx, instruction, imageURL)
	if err != nil {
		log.Printf("garment analysis error: %v", err)
		return nil, utils.ErrMalformedGenerationOutput
	}

	clean := utils.StripJSONFences(raw)
	var analysis response_models.GarmentAnalysis
	if err := json.Unmarshal([]byte(clean), &analysis); err != nil {
		return nil, utils.ErrMalformedGenerationOutput
	}
	if !dbm.GarmentCategory(analysis.Category).Valid() {
		return nil, utils.ErrMalformedGenerationOutput
	}
	return &analysis, nil
}

func (o *OutfitService) GetPlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) (*response_models.OutfitPlanResponse, error) {
	plan, err := o.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.AccountID != accountID {
		return nil, utils.ErrOutfitPlanNotFound
	}
	return planToResponse(plan), nil
}

func (o *OutfitService) ListPlans(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.OutfitPlanResponse, error) {
	plans, err := o.planRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.OutfitPlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, *planToResponse(&plans[i]))
	}
	return out, nil
}

// buildSingleDayPrompt enumerates the wardrobe by id and pins the schema the
// model must return. Constraints are advisory: the orchestrator does not
// post-validate that returned ids belong to the wardrobe.
func (o *OutfitService) buildSingleDayPrompt(garments []*dbm.Garment, weather *response_models.WeatherSnapshot, occasion, stylePreference, language string) string {
	var prompt strings.Builder

	prompt.WriteString("Compose one outfit from this wardrobe. Return JSON only:\n")
	prompt.WriteString(`{"outfits":[{"occasion":"...","garment_ids":["id-from-list"],"notes":"styling notes"}]}`)
	prompt.WriteString("\n\nWardrobe:\n")
	for _, g := range garments {
		writeGarmentLine(&prompt, g)
	}

	fmt.Fprintf(&prompt, "\nWeather in %s: %.0f°C (feels like %.0f°C), %s, humidity %d%%, rain likely: %t\n",
		weather.City, weather.TempC, weather.FeelsLikeC, weather.Description, weather.Humidity, weather.RainLikely)
	fmt.Fprintf(&prompt, "Occasion: %s\n", occasion)
	if stylePreference != "" {
		fmt.Fprintf(&prompt, "Style preference: %s\n", stylePreference)
	}
	if language != "" && language != "en" {
		fmt.Fprintf(&prompt, "Write the notes in language code %q.\n", language)
	}

	prompt.WriteString("\nHard constraints:\n")
	prompt.WriteString("- Use only garment ids from the wardrobe list above.\n")
	if weather.TempC < outerLayerTempC {
		prompt.WriteString("- Include an outerwear garment: the temperature is low.\n")
	}
	if weather.RainLikely {
		prompt.WriteString("- Prefer rain-appropriate shoes and layers.\n")
	}
	prompt.WriteString("Return JSON only. No comments, no markdown.\n")

	return prompt.String()
}

func (o *OutfitService) buildWeeklyPrompt(garments []*dbm.Garment, forecast []response_models.WeatherSnapshot, req request_models.GenerateWeeklyPlanRequest, language string) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Plan outfits for %d days from this wardrobe. Return JSON only:\n", len(forecast))
	prompt.WriteString(`{"outfits":[{"day":"Monday","occasion":"...","garment_ids":["id-from-list"],"notes":"styling notes"}]}`)
	prompt.WriteString("\n\nWardrobe:\n")
	for _, g := range garments {
		writeGarmentLine(&prompt, g)
	}

	prompt.WriteString("\nForecast:\n")
	coldDay := false
	for _, day := range forecast {
		fmt.Fprintf(&prompt, "- %s: %.0f°C, %s, rain likely: %t\n", day.Date, day.TempC, day.Description, day.RainLikely)
		if day.TempC < outerLayerTempC {
			coldDay = true
		}
	}

	if req.Occasion != "" {
		fmt.Fprintf(&prompt, "\nDefault occasion: %s\n", req.Occasion)
	}
	for _, pref := range req.Preferences {
		fmt.Fprintf(&prompt, "- %s: %s\n", pref.Day, pref.Occasion)
	}
	if language != "" && language != "en" {
		fmt.Fprintf(&prompt, "Write the notes in language code %q.\n", language)
	}

	fmt.Fprintf(&prompt, "\nHard constraints:\n- Exactly %d entries in \"outfits\", one per day in order.\n", len(forecast))
	prompt.WriteString("- Use only garment ids from the wardrobe list above.\n")
	prompt.WriteString("- Never repeat the same top and bottom combination across the week.\n")
	if coldDay {
		prompt.WriteString("- Include an outerwear garment on the cold days.\n")
	}
	prompt.WriteString("Return JSON only. No comments, no markdown.\n")

	return prompt.String()
}

// parseOutfits strips any fence wrapping and decodes the model output.
// Accepts either the {"outfits":[...]} object or a bare array.
func (o *OutfitService) parseOutfits(rawJSON string) ([]response_models.OutfitEntry, error) {
	clean := utils.StripJSONFences(rawJSON)

	var wrapped struct {
		Outfits []response_models.OutfitEntry `json:"outfits"`
	}
	if err := json.Unmarshal([]byte(clean), &wrapped); err == nil && len(wrapped.Outfits) > 0 {
		return wrapped.Outfits, nil
	}

	var bare []response_models.OutfitEntry
	if err := json.Unmarshal([]byte(clean), &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	log.Printf("failed to parse generation output: %s", clean)
	return nil, utils.ErrMalformedGenerationOutput
}

// findAlternatives pulls embedding-similar garments the outfit did not use.
// Best effort: any failure just means no alternatives.
func (o *OutfitService) findAlternatives(ctx context.Context, styleText string, usedIDs []string, garmentMap map[string]*dbm.Garment) []response_models.OutfitGarment {
	vector, err := o.stylist.GetEmbedding(ctx, styleText)
	if err != nil {
		return nil
	}
	similar, err := o.embeddingRepo.ListSimilarByVector(vector, 15)
	if err != nil {
		return nil
	}

	used := make(map[string]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}

	var alts []response_models.OutfitGarment
	for _, emb := range similar {
		if used[emb.GarmentID] {
			continue
		}
		g, ok := garmentMap[emb.GarmentID]
		if !ok {
			continue
		}
		alts = append(alts, toOutfitGarment(g))
		if len(alts) >= 2 {
			break
		}
	}
	return alts
}

func (o *OutfitService) persistPlan(ctx context.Context, accountID uuid.UUID, kind dbm.OutfitPlanKind, occasion string, entries []response_models.OutfitEntry, weather *response_models.WeatherSnapshot) (*dbm.OutfitPlan, error) {
	entriesJSON, _ := json.Marshal(entries)
	weatherJSON, _ := json.Marshal(weather)

	plan := &dbm.OutfitPlan{
		AccountID: accountID,
		Kind:      kind,
		Occasion:  occasion,
		Entries:   datatypes.JSON(entriesJSON),
		Weather:   datatypes.JSON(weatherJSON),
	}
	if err := o.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func planToResponse(plan *dbm.OutfitPlan) *response_models.OutfitPlanResponse {
	var entries []response_models.OutfitEntry
	_ = json.Unmarshal(plan.Entries, &entries)
	var weather response_models.WeatherSnapshot
	_ = json.Unmarshal(plan.Weather, &weather)

	return &response_models.OutfitPlanResponse{
		PlanID:   plan.ID.String(),
		Kind:     string(plan.Kind),
		Occasion: plan.Occasion,
		Outfits:  entries,
		Weather:  weather,
	}
}

func writeGarmentLine(prompt *strings.Builder, g *dbm.Garment) {
	fmt.Fprintf(prompt, "- ID:%s | Name:%s | Category:%s | Color:%s | Style:%s | Seasons:%s\n",
		g.ID.String(), g.Name, g.Category, g.Color, g.Style, strings.Join(g.Seasons, ","))
}

func buildGarmentMap(garments []*dbm.Garment) map[string]*dbm.Garment {
	m := make(map[string]*dbm.Garment, len(garments))
	for _, g := range garments {
		m[g.ID.String()] = g
	}
	return m
}

func resolveGarments(ids []string, garmentMap map[string]*dbm.Garment) []response_models.OutfitGarment {
	var out []response_models.OutfitGarment
	for _, id := range ids {
		if g, ok := garmentMap[id]; ok {
			out = append(out, toOutfitGarment(g))
		}
	}
	return out
}

func toOutfitGarment(g *dbm.Garment) response_models.OutfitGarment {
	return response_models.OutfitGarment{
		ID:       g.ID.String(),
		Name:     g.Name,
		Category: string(g.Category),
		Color:    g.Color,
		Style:    g.Style,
		Seasons:  g.Seasons,
	}
}
