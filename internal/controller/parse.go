package controller

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/tipsplit/internal/models"
)

// ParseBillAmount parses free-text bill input.
//
// Only plain decimal notation is accepted: digits, an optional decimal point
// and an optional exponent ("42", "19.99", "1e3"). It returns the amount and
// true for a value in (0, models.MaxBillAmount]. Anything else (empty text,
// hex floats, "Inf", "NaN", zero, negatives, amounts over the cap) returns 0
// and false; 0 is the value the calculator receives in that case.
func ParseBillAmount(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !decimalOnly(text) {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || v <= 0 || v > models.MaxBillAmount {
		return 0, false
	}
	return v, true
}

// ValidBillText reports whether text should be shown without an error.
// Empty text is not flagged; the field simply has not been filled yet.
func ValidBillText(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	_, ok := ParseBillAmount(text)
	return ok
}

func decimalOnly(text string) bool {
	return !strings.ContainsFunc(text, func(r rune) bool {
		return !strings.ContainsRune("0123456789.eE+-", r)
	})
}
