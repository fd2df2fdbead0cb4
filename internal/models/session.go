package models

// Session represents one interactive bill-splitting session.
// It stores the raw bill text alongside the parsed state so a client can
// resume editing exactly where it left off.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Title is a human-readable label, auto-generated when empty.
	Title string

	// BillText is the bill amount exactly as the user typed it.
	BillText string

	// State is the normalised input the calculator runs on.
	State BillState

	// AmountPerPerson is the last computed share for State.
	AmountPerPerson float64

	// CreatedAt is the Unix timestamp when the session was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}
