package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookbook/internal/models/request_models"
	mem "lookbook/pkg/memcache"
	"lookbook/pkg/utils"
)

type fakeMail struct {
	sentTo      []string
	lastCode    string
	lastSubject string
}

func (f *fakeMail) SendPasswordResetCode(to, code string) error {
	f.sentTo = append(f.sentTo, to)
	f.lastCode = code
	return nil
}

func (f *fakeMail) SendMailToNotifyUser(to, subject, _ string) error {
	f.sentTo = append(f.sentTo, to)
	f.lastSubject = subject
	return nil
}

func newTestAccountService() (AccountServiceInterface, *fakeAccountRepo, *fakeMail) {
	accountRepo := newFakeAccountRepo()
	mail := &fakeMail{}
	entitlement := NewEntitlementService(accountRepo, newFakeSubscriptionRepo())
	svc := NewAccountService(accountRepo, entitlement, mem.NewOtpTokens(), mail)
	return svc, accountRepo, mail
}

func TestCreateAccount_StartsTrial(t *testing.T) {
	svc, _, _ := newTestAccountService()

	login, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada", Email: "ada@example.com", Password: "hunter2hunter2", City: "Berlin",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, login.Token)
	assert.True(t, login.Entitlement.IsTrial)
	assert.True(t, login.Entitlement.IsActive)
	assert.Equal(t, TrialLengthDays, login.Entitlement.DaysRemaining)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAccountService()

	req := request_models.SignUpRequest{DisplayName: "Ada", Email: "ada@example.com", Password: "hunter2hunter2"}
	_, err := svc.CreateAccount(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAccountService()
	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		login, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email: "ada@example.com", Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, login.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email: "ada@example.com", Password: "wrong",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), request_models.LoginRequest{
			Email: "ghost@example.com", Password: "hunter2hunter2",
		})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, mail := newTestAccountService()
	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ada", Email: "ada@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ada@example.com"))
	require.NotEmpty(t, mail.lastCode)

	// Wrong code does not consume the stored one.
	err = svc.ResetPassword(context.Background(), request_models.ForgotPasswordRequest{
		Email: "ada@example.com", Otp: "000000", NewPassword: "newpassword123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)

	require.NoError(t, svc.VerifyOtp(context.Background(), "ada@example.com", mail.lastCode))
	require.NoError(t, svc.ResetPassword(context.Background(), request_models.ForgotPasswordRequest{
		Email: "ada@example.com", Otp: mail.lastCode, NewPassword: "newpassword123",
	}))

	// Old password no longer works, new one does.
	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "ada@example.com", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Email: "ada@example.com", Password: "newpassword123"})
	assert.NoError(t, err)

	// The code was single-use.
	err = svc.ResetPassword(context.Background(), request_models.ForgotPasswordRequest{
		Email: "ada@example.com", Otp: mail.lastCode, NewPassword: "anotherpassword1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	svc, _, mail := newTestAccountService()

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
	assert.Empty(t, mail.sentTo)
}

func TestOtpStoreExpiry(t *testing.T) {
	store := mem.NewOtpTokens()
	store.Set("a@b.c", "123456", -time.Second)

	assert.False(t, store.Consume("a@b.c", "123456"))
}
