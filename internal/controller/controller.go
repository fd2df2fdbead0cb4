// Package controller holds the editable state of one split and recomputes
// the per-person amount whenever an input changes.
package controller

import (
	"math"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/models"
)

// Snapshot is everything a view needs to render the current split.
type Snapshot struct {
	State           models.BillState
	BillText        string
	BillValid       bool
	CanDecrement    bool
	AmountPerPerson float64
	Formatted       string
}

// Controller owns a BillState and the last computed amount.
// It is not safe for concurrent use; each session gets its own Controller.
type Controller struct {
	state    models.BillState
	billText string
	amount   float64
	onChange func(Snapshot)
}

// New creates a Controller starting from state. Out-of-range tip and party
// values are clamped; a bill amount that is NaN or beyond
// models.MaxBillAmount is replaced by 0. onChange may be nil; otherwise it runs after every recompute.
func New(state models.BillState, billText string, onChange func(Snapshot)) *Controller {
	c := &Controller{
		state: models.BillState{
			BillAmount: clampBill(state.BillAmount),
			TipPercent: clampTip(state.TipPercent),
			PartySize:  clampParty(state.PartySize),
		},
		billText: billText,
		onChange: onChange,
	}
	if billText != "" {
		c.state.BillAmount, _ = ParseBillAmount(billText)
	}
	c.amount = calculator.Compute(c.state.BillAmount, c.state.TipPercent, c.state.PartySize)
	return c
}

// SetBillText stores the raw text and feeds its parsed value (or 0) to the
// calculator.
func (c *Controller) SetBillText(text string) {
	c.billText = text
	c.state.BillAmount, _ = ParseBillAmount(text)
	c.recompute()
}

// SetTipPercent sets the tip, clamped to [0, 100].
func (c *Controller) SetTipPercent(percent int) {
	c.state.TipPercent = clampTip(percent)
	c.recompute()
}

// SetPartySize sets the party size, floored at 1.
func (c *Controller) SetPartySize(n int) {
	c.state.PartySize = clampParty(n)
	c.recompute()
}

// IncrementParty adds one person to the split.
func (c *Controller) IncrementParty() {
	c.SetPartySize(c.state.PartySize + 1)
}

// DecrementParty removes one person. It does nothing when the party is
// already at its minimum.
func (c *Controller) DecrementParty() {
	if !c.CanDecrement() {
		return
	}
	c.SetPartySize(c.state.PartySize - 1)
}

// CanDecrement reports whether DecrementParty would change anything.
func (c *Controller) CanDecrement() bool {
	return c.state.PartySize > models.MinPartySize
}

// State returns the current inputs.
func (c *Controller) State() models.BillState {
	return c.state
}

// BillText returns the bill text as last entered.
func (c *Controller) BillText() string {
	return c.billText
}

// AmountPerPerson returns the last computed share.
func (c *Controller) AmountPerPerson() float64 {
	return c.amount
}

// Snapshot returns the current view state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:           c.state,
		BillText:        c.billText,
		BillValid:       ValidBillText(c.billText),
		CanDecrement:    c.CanDecrement(),
		AmountPerPerson: c.amount,
		Formatted:       calculator.FormatAmount(c.amount),
	}
}

func (c *Controller) recompute() {
	c.amount = calculator.Compute(c.state.BillAmount, c.state.TipPercent, c.state.PartySize)
	if c.onChange != nil {
		c.onChange(c.Snapshot())
	}
}

func clampBill(v float64) float64 {
	if math.IsNaN(v) || math.Abs(v) > models.MaxBillAmount {
		return 0
	}
	return v
}

func clampTip(p int) int {
	if p < models.MinTipPercent {
		return models.MinTipPercent
	}
	if p > models.MaxTipPercent {
		return models.MaxTipPercent
	}
	return p
}

func clampParty(n int) int {
	if n < models.MinPartySize {
		return models.MinPartySize
	}
	return n
}
