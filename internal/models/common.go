// internal/models/common.go
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase assigns the server-side identifier and creation timestamps.
// Both storage backends persist what the service sets here.
func NewBase() BaseModel {
	now := time.Now().UTC()
	return BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// Enums
type TokenStatus string

const (
	TokenStatusPending   TokenStatus = "pending"
	TokenStatusCompleted TokenStatus = "completed"
	TokenStatusCancelled TokenStatus = "cancelled"
)

type AuctionStatus string

const (
	AuctionStatusPending   AuctionStatus = "pending"
	AuctionStatusCompleted AuctionStatus = "completed"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// MessageCode is the closed set of outcome tags every operation reports
// through. PaymentFailed, PaymentCompleted and Success are reserved for
// payment integration and currently unused.
type MessageCode string

const (
	CodeNotFound         MessageCode = "NOT_FOUND"
	CodeInvalidPayload   MessageCode = "INVALID_PAYLOAD"
	CodeUnauthorized     MessageCode = "UNAUTHORIZED"
	CodeError            MessageCode = "ERROR"
	CodePaymentFailed    MessageCode = "PAYMENT_FAILED"
	CodePaymentCompleted MessageCode = "PAYMENT_COMPLETED"
	CodeSuccess          MessageCode = "SUCCESS"
)

// AppError carries a machine-checkable code plus a human-readable
// detail string.
type AppError struct {
	Code   MessageCode `json:"code"`
	Detail string      `json:"detail"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func NewNotFound(detail string) *AppError {
	return &AppError{Code: CodeNotFound, Detail: detail}
}

func NewInvalidPayload(detail string) *AppError {
	return &AppError{Code: CodeInvalidPayload, Detail: detail}
}

func NewUnauthorized(detail string) *AppError {
	return &AppError{Code: CodeUnauthorized, Detail: detail}
}

func NewInternalError(detail string) *AppError {
	return &AppError{Code: CodeError, Detail: detail}
}

// AsAppError unwraps err to an *AppError when the failure is one of the
// tagged outcomes.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
