// Package common defines shared sentinel errors and small helpers used across
// GophBank layers. Callers should use errors.Is to match these values and
// KindOf to decide how a failure is presented to the user.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors.
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrWeakPassword      = errors.New("password must be at least 6 characters long")
	ErrInvalidName       = errors.New("name must not be empty")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidCardNumber = errors.New("card number must contain exactly 16 digits")
	ErrInvalidCardType   = errors.New("unknown card type")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrInvalidLoanTerms  = errors.New("invalid loan terms")

	// Authorization errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Resource errors.
	ErrDuplicateEmail    = errors.New("email is already registered")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrNoActiveCard      = errors.New("recipient has no active card")
	ErrCardNotFound      = errors.New("card not found")
	ErrUserNotFound      = errors.New("user not found")

	// State errors.
	ErrSelfTransfer      = errors.New("cannot transfer to yourself")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDailyLimitReached = errors.New("daily click limit reached")
	ErrMaxLevelReached   = errors.New("upgrade is already at max level")
	ErrLedgerMismatch    = errors.New("balance does not match transaction log")
)

// Kind is a coarse classification of an error, used by the presentation
// layer to pick a severity and by callers that only care about the category.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindResource      Kind = "resource"
	KindState         Kind = "state"
	KindInternal      Kind = "internal"
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindValidation, []error{ErrInvalidEmail, ErrWeakPassword, ErrInvalidName, ErrInvalidAmount,
		ErrInvalidCardNumber, ErrInvalidCardType, ErrUnknownUpgrade, ErrInvalidLoanTerms}},
	{KindAuthorization, []error{ErrUnauthorized, ErrInvalidCredentials, ErrNoSession, ErrInvalidToken, ErrTokenExpired}},
	{KindResource, []error{ErrDuplicateEmail, ErrRecipientNotFound, ErrNoActiveCard, ErrCardNotFound,
		ErrUserNotFound, ErrorNotFound}},
	{KindState, []error{ErrSelfTransfer, ErrInsufficientFunds, ErrDailyLimitReached, ErrMaxLevelReached}},
}

// KindOf reports the category of err. Unknown and nil errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, k := range kinds {
		for _, e := range k.errs {
			if errors.Is(err, e) {
				return k.kind
			}
		}
	}
	return KindInternal
}

// IsUserError reports whether err is a recoverable, user-caused failure
// (anything except internal errors).
func IsUserError(err error) bool {
	return err != nil && KindOf(err) != KindInternal
}
