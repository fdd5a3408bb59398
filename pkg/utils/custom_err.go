package utils

import "errors"

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateReference  = errors.New("reference already used")
	ErrMissingSignature    = errors.New("missing webhook signature")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrCallbackLoop        = errors.New("tenant callback_url points back at the gateway callback")
	ErrGatewayUnreachable  = errors.New("payment gateway unreachable")
	ErrDatabaseError       = errors.New("database error")
)
