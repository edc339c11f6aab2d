package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/google/uuid"
)

const (
	prefixUser        = "usr"
	prefixCard        = "crd"
	prefixTransaction = "txn"
	prefixTransfer    = "trf"
)

const cardDigits = 16

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// formatCardNumber groups 16 digits by four: "1234 5678 9012 3456".
func formatCardNumber(digits string) string {
	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// normalizeCardNumber strips spaces and dashes, checks for exactly 16 digits
// and returns the canonical grouped form.
func normalizeCardNumber(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '\t' {
			return -1
		}
		return r
	}, raw)

	if len(digits) != cardDigits {
		return "", common.ErrInvalidCardNumber
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", common.ErrInvalidCardNumber
		}
	}
	return formatCardNumber(digits), nil
}

// randomDigits is a seam for tests that need card number collisions.
var randomDigits = common.RandomDigits

// newCardNumber draws numbers until taken reports a free one.
func newCardNumber(taken func(string) bool) (string, error) {
	for {
		digits, err := randomDigits(cardDigits)
		if err != nil {
			return "", fmt.Errorf("card number generation: %w", err)
		}
		if n := formatCardNumber(digits); !taken(n) {
			return n, nil
		}
	}
}

func newCVV() (string, error) {
	return common.RandomDigits(3)
}
