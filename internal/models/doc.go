// Package models defines the core domain models for Tipsplit.
//
// # Models
//
//   - BillState: the three user-editable inputs of a split (bill amount,
//     tip percent, party size)
//   - Session: one interactive editing session holding a BillState
//     snapshot and its last computed per-person amount
//
// The per-person amount is never edited directly. It is always recomputed
// from BillState by the calculator package.
//
// # Bounds
//
// TipPercent stays within [MinTipPercent, MaxTipPercent] and PartySize never
// drops below MinPartySize. The controller package enforces both; the
// calculator trusts its caller.
package models
