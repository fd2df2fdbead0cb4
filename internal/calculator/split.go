package calculator

import "fmt"

// Compute returns the amount each person owes when billAmount plus
// tipPercent is split across partySize people.
//
// The result is bill × (1 + tip/100) ÷ people, evaluated in that order so
// rounding matches what clients display. A non-positive party size yields 0.
// tipPercent is not clamped here; callers keep it within [0, 100].
func Compute(billAmount float64, tipPercent int, partySize int) float64 {
	if partySize <= 0 {
		return 0
	}
	return billAmount * (1 + float64(tipPercent)/100) / float64(partySize)
}

// Total returns the bill amount including the tip, before splitting.
func Total(billAmount float64, tipPercent int) float64 {
	return billAmount * (1 + float64(tipPercent)/100)
}

// TipAmount returns only the tip portion of the total.
func TipAmount(billAmount float64, tipPercent int) float64 {
	return Total(billAmount, tipPercent) - billAmount
}

// FormatAmount renders an amount as a two-decimal dollar string, e.g. "$57.50".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
