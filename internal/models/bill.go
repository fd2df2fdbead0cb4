package models

const (
	// MinTipPercent and MaxTipPercent bound the tip control.
	MinTipPercent = 0
	MaxTipPercent = 100

	// MinPartySize is the smallest party a bill can be split across.
	MinPartySize = 1

	// DefaultTipPercent is the tip a new bill starts with.
	DefaultTipPercent = 15

	// MaxBillAmount is the largest bill magnitude accepted. Any tip a caller
	// can send (int32 range) keeps bill × (1 + tip/100) finite below it.
	MaxBillAmount = 1e12
)

// BillState holds the inputs of one split.
type BillState struct {
	// BillAmount is the pre-tip bill. Zero when the entered text is not a
	// valid positive amount.
	BillAmount float64

	// TipPercent is the tip applied on top of the bill, in whole percent.
	TipPercent int

	// PartySize is the number of people splitting the bill (>= 1).
	PartySize int
}

// DefaultBillState returns the state a fresh session starts in.
func DefaultBillState() BillState {
	return BillState{
		BillAmount: 0,
		TipPercent: DefaultTipPercent,
		PartySize:  MinPartySize,
	}
}
