package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrTrialAlreadyUsed   = errors.New("free trial already used")
	ErrAccessDenied       = errors.New("access denied")
	ErrGateway            = errors.New("payment gateway unavailable")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrMailUnavailable    = errors.New("mail service unavailable")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)
