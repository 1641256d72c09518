package models

// Default values a freshly opened (or reset) widget shows.
const (
	DefaultBill          = ""
	DefaultTipPercentage = ""
	DefaultPartyCount    = "1"
)

// Inputs holds the raw text of the three widget fields.
// Any field may be empty, partially typed or non-numeric.
type Inputs struct {
	// Bill is the amount owed before tip, as entered.
	Bill string

	// TipPercentage is either a preset written as text (e.g. "15") or a
	// custom entry.
	TipPercentage string

	// PartyCount is the number of people splitting the bill.
	PartyCount string
}

// DefaultInputs returns the state of a widget that has not been edited.
func DefaultInputs() Inputs {
	return Inputs{
		Bill:          DefaultBill,
		TipPercentage: DefaultTipPercentage,
		PartyCount:    DefaultPartyCount,
	}
}

// Session is a form held on behalf of a remote widget.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Inputs is the current field state of the widget.
	Inputs Inputs

	// CreatedAt is the Unix timestamp when the session was opened.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	// Idle sessions are swept based on this value.
	UpdatedAt int64
}
