package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/response_models"
)

// In-memory fakes for the repository and client boundaries. Tests drive the
// services against these instead of a live database or provider.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*dbm.Account
	stamped  map[uuid.UUID]string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[uuid.UUID]*dbm.Account),
		stamped:  make(map[uuid.UUID]string),
	}
}

func (f *fakeAccountRepo) add(account *dbm.Account) *dbm.Account {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	return account
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*dbm.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByExternalCustomerID(_ context.Context, customerID string) (*dbm.Account, error) {
	for _, a := range f.accounts {
		if a.ExternalCustomerID == customerID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *dbm.Account) error {
	// Mirror the BaseModel.BeforeCreate hook the real repository relies on.
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().Unix()
	}
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *dbm.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	if a, ok := f.accounts[id]; ok {
		a.PasswordHash = hash
	}
	return nil
}

func (f *fakeAccountRepo) StampExternalCustomerID(_ context.Context, id uuid.UUID, customerID string) error {
	if a, ok := f.accounts[id]; ok && a.ExternalCustomerID == "" {
		a.ExternalCustomerID = customerID
		f.stamped[id] = customerID
	}
	return nil
}

type fakeSubscriptionRepo struct {
	subs   map[uuid.UUID]*dbm.Subscription
	events map[string]*dbm.BillingEventRecord
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subs:   make(map[uuid.UUID]*dbm.Subscription),
		events: make(map[string]*dbm.BillingEventRecord),
	}
}

func (f *fakeSubscriptionRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*dbm.Subscription, error) {
	return f.subs[accountID], nil
}

func (f *fakeSubscriptionRepo) FindByExternalID(_ context.Context, externalID string) (*dbm.Subscription, error) {
	for _, s := range f.subs {
		if s.ExternalSubscriptionID == externalID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) Upsert(_ context.Context, sub *dbm.Subscription) error {
	if existing, ok := f.subs[sub.AccountID]; ok {
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
	} else if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.subs[sub.AccountID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) Update(_ context.Context, sub *dbm.Subscription) error {
	f.subs[sub.AccountID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) UpdateStatusByExternalID(_ context.Context, externalID string, status dbm.SubscriptionStatus) (int64, error) {
	for _, s := range f.subs {
		if s.ExternalSubscriptionID == externalID {
			s.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeSubscriptionRepo) RecordEvent(_ context.Context, record *dbm.BillingEventRecord) error {
	f.events[record.EventID] = record
	return nil
}

func (f *fakeSubscriptionRepo) EventSeen(_ context.Context, eventID string) (bool, error) {
	_, ok := f.events[eventID]
	return ok, nil
}

type fakeGarmentRepo struct {
	garments []*dbm.Garment
}

func (f *fakeGarmentRepo) add(accountID uuid.UUID, name string, category dbm.GarmentCategory) *dbm.Garment {
	g := &dbm.Garment{
		AccountID: accountID,
		Name:      name,
		Category:  category,
		Color:     "navy",
		Style:     "casual",
		IsActive:  true,
	}
	g.ID = uuid.New()
	f.garments = append(f.garments, g)
	return g
}

func (f *fakeGarmentRepo) ListActiveByAccount(_ context.Context, accountID uuid.UUID) ([]*dbm.Garment, error) {
	var out []*dbm.Garment
	for _, g := range f.garments {
		if g.AccountID == accountID && g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGarmentRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _, _ int) ([]*dbm.Garment, error) {
	var out []*dbm.Garment
	for _, g := range f.garments {
		if g.AccountID == accountID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGarmentRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.Garment, error) {
	for _, g := range f.garments {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGarmentRepo) CountByCategory(_ context.Context, accountID uuid.UUID, category dbm.GarmentCategory) (int64, error) {
	var count int64
	for _, g := range f.garments {
		if g.AccountID == accountID && g.Category == category {
			count++
		}
	}
	return count, nil
}

func (f *fakeGarmentRepo) Insert(_ context.Context, garment *dbm.Garment) error {
	if garment.ID == uuid.Nil {
		garment.ID = uuid.New()
	}
	f.garments = append(f.garments, garment)
	return nil
}

func (f *fakeGarmentRepo) Update(_ context.Context, garment *dbm.Garment) error {
	for i, g := range f.garments {
		if g.ID == garment.ID {
			f.garments[i] = garment
			return nil
		}
	}
	return errors.New("garment not found")
}

func (f *fakeGarmentRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for i, g := range f.garments {
		if g.ID == id {
			f.garments = append(f.garments[:i], f.garments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeEmbeddingRepo struct {
	embeddings []dbm.GarmentEmbedding
	deleted    []string
}

func (f *fakeEmbeddingRepo) ListSimilarByVector(_ pgvector.Vector, limit int) ([]dbm.GarmentEmbedding, error) {
	if limit > len(f.embeddings) {
		limit = len(f.embeddings)
	}
	return f.embeddings[:limit], nil
}

func (f *fakeEmbeddingRepo) Upsert(embedding dbm.GarmentEmbedding) error {
	for i, e := range f.embeddings {
		if e.GarmentID == embedding.GarmentID {
			f.embeddings[i] = embedding
			return nil
		}
	}
	f.embeddings = append(f.embeddings, embedding)
	return nil
}

func (f *fakeEmbeddingRepo) DeleteByGarmentID(garmentID string) error {
	f.deleted = append(f.deleted, garmentID)
	return nil
}

type fakePlanRepo struct {
	plans []*dbm.OutfitPlan
}

func (f *fakePlanRepo) Insert(_ context.Context, plan *dbm.OutfitPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*dbm.OutfitPlan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _, _ int) ([]dbm.OutfitPlan, error) {
	var out []dbm.OutfitPlan
	for _, p := range f.plans {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeStylist returns canned model output and counts generation calls so
// tests can assert the model was never reached.
type fakeStylist struct {
	generateOutput string
	generateErr    error
	analyzeOutput  string
	analyzeErr     error
	embedErr       error

	generateCalls int
}

func (f *fakeStylist) GenerateStructuredOutfits(_ context.Context, _ string) (string, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generateOutput, nil
}

func (f *fakeStylist) AnalyzeGarmentImage(_ context.Context, _ string, _ string) (string, error) {
	if f.analyzeErr != nil {
		return "", f.analyzeErr
	}
	return f.analyzeOutput, nil
}

func (f *fakeStylist) GetEmbedding(_ context.Context, _ string) (pgvector.Vector, error) {
	if f.embedErr != nil {
		return pgvector.Vector{}, f.embedErr
	}
	return pgvector.NewVector(make([]float32, 4)), nil
}

type fakeWeather struct {
	current  *response_models.WeatherSnapshot
	forecast []response_models.WeatherSnapshot
	err      error
}

func (f *fakeWeather) GetCurrent(_ context.Context, _ string) (*response_models.WeatherSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.current, nil
}

func (f *fakeWeather) GetForecast(_ context.Context, _ string, _ int) ([]response_models.WeatherSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.forecast, nil
}

type fakeEntitlement struct {
	state response_models.EntitlementState
	err   error
}

func (f *fakeEntitlement) CurrentState(_ context.Context, _ uuid.UUID) (response_models.EntitlementState, error) {
	if f.err != nil {
		return response_models.EntitlementState{}, f.err
	}
	return f.state, nil
}

type fakeGateway struct {
	checkoutURL string
	portalURL   string
	err         error
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, _ uuid.UUID, _, _, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.checkoutURL, nil
}

func (f *fakeGateway) CreatePortalSession(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.portalURL, nil
}
