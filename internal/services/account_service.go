package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/internal/models/response_models"
	"lookbook/internal/repositories"
	mem "lookbook/pkg/memcache"
	"lookbook/pkg/utils"
)

const otpTTL = 10 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	entitlement EntitlementServiceInterface
	otpStore    mem.OtpStore
	mail        IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	entitlement EntitlementServiceInterface,
	otpStore mem.OtpStore,
	mail IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		entitlement: entitlement,
		otpStore:    otpStore,
		mail:        mail,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.LoginResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	language := request.Language
	if language == "" {
		language = "en"
	}

	account := &dbm.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
		Role:         "user",
		City:         request.City,
		Language:     language,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.loginResponse(ctx, account)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.loginResponse(ctx, account)
}

// loginResponse issues a token and attaches the freshly evaluated entitlement
// so the client can gate its UI without a second round trip.
func (a *AccountService) loginResponse(ctx context.Context, account *dbm.Account) (*response_models.LoginResponse, error) {
	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	state, err := a.entitlement.CurrentState(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token:       token,
		Entitlement: state,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	state, err := a.entitlement.CurrentState(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return profileResponse(account, state), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if request.DisplayName != "" {
		account.Name = request.DisplayName
	}
	if request.City != "" {
		account.City = request.City
	}
	if request.Language != "" {
		account.Language = request.Language
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	state, err := a.entitlement.CurrentState(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return profileResponse(account, state), nil
}

// RequestPasswordReset always reports success to the caller: whether the
// email exists is not disclosed. The OTP is only generated and sent when the
// account is real.
func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	otp, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.otpStore.Set(email, otp, otpTTL)

	if err := a.mail.SendPasswordResetCode(email, otp); err != nil {
		log.Printf("failed to send reset code to %s: %v", email, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) VerifyOtp(ctx context.Context, email, otp string) error {
	stored, ok := a.otpStore.Peek(email)
	if !ok || stored != otp {
		return utils.ErrInvalidResetToken
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	if !a.otpStore.Consume(request.Email, request.Otp) {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func profileResponse(account *dbm.Account, state response_models.EntitlementState) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:          account.ID.String(),
		DisplayName: account.Name,
		Email:       account.Email,
		City:        account.City,
		Language:    account.Language,
		CreatedAt:   account.CreatedAt,
		Entitlement: state,
	}
}
