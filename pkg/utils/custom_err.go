package utils

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrGarmentNotFound    = errors.New("garment not found")
	ErrOutfitPlanNotFound = errors.New("outfit plan not found")
	ErrQuotaExceeded   = errors.New("garment quota exceeded for this category")
	ErrFeatureLocked   = errors.New("feature not available on current plan")

	ErrInsufficientWardrobe      = errors.New("not enough active garments to generate an outfit")
	ErrWeatherUnavailable        = errors.New("weather service unavailable")
	ErrMalformedGenerationOutput = errors.New("stylist returned malformed output")

	ErrWebhookSignatureInvalid = errors.New("webhook signature invalid")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrUnknownEventKind        = errors.New("unknown billing event kind")
	ErrPlanNotFound            = errors.New("plan not found")

	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)
