package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{ErrInvalidEmail, KindValidation},
		{ErrInvalidCardNumber, KindValidation},
		{ErrUnauthorized, KindAuthorization},
		{ErrInvalidCredentials, KindAuthorization},
		{ErrDuplicateEmail, KindResource},
		{ErrCardNotFound, KindResource},
		{ErrInsufficientFunds, KindState},
		{ErrDailyLimitReached, KindState},
		{fmt.Errorf("transfer: %w", ErrSelfTransfer), KindState},
		{errors.New("disk on fire"), KindInternal},
		{nil, KindInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), "error %v", tt.err)
	}
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(ErrMaxLevelReached))
	assert.False(t, IsUserError(errors.New("boom")))
	assert.False(t, IsUserError(nil))
}
