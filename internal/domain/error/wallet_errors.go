// Package error defines domain-specific errors for the Savvy Wallet application.
package error

import "errors"

// Wallet and assistant domain errors.
var (
	// ErrInvalidBalanceValue is returned when a balance override is not a finite number.
	ErrInvalidBalanceValue = errors.New("balance must be a valid number")

	// ErrInvalidTimeRange is returned when a time range filter is not recognized.
	ErrInvalidTimeRange = errors.New("time range must be: all, 7days or 30days")

	// ErrQuestionEmpty is returned when the assistant receives a blank question.
	ErrQuestionEmpty = errors.New("question cannot be empty")

	// ErrAssistantBusy is returned when a question is submitted while another is in flight.
	ErrAssistantBusy = errors.New("assistant is already answering a question")

	// ErrSnapshotMissing is returned by the snapshot gateway when a record has
	// never been persisted. Callers fall back to the seed defaults.
	ErrSnapshotMissing = errors.New("snapshot record missing")
)

// WalletErrorCode defines error codes for wallet and assistant errors.
// Format: WLT-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBalanceValue WalletErrorCode = "WLT-010001"
	ErrCodeInvalidTimeRange    WalletErrorCode = "WLT-010002"
	ErrCodeQuestionEmpty       WalletErrorCode = "WLT-010003"

	// Throttling errors (02XXXX)
	ErrCodeAssistantBusy WalletErrorCode = "WLT-020001"
	ErrCodeRateLimited   WalletErrorCode = "WLT-020002"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
