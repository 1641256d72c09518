// Package api defines the wire messages and Connect bindings of the
// tiptop.v1.TipService. Messages travel as plain JSON.
package api

// Inputs mirrors the three widget fields as raw text.
type Inputs struct {
	Bill          string `json:"bill"`
	TipPercentage string `json:"tip_percentage"`
	PartyCount    string `json:"party_count"`
}

// Result holds the per-person shares, each with exactly two decimals.
type Result struct {
	PreTipPerPerson string `json:"pre_tip_per_person"`
	TipPerPerson    string `json:"tip_per_person"`
	TotalPerPerson  string `json:"total_per_person"`
}

// Session is a remote form together with its derived result.
type Session struct {
	SessionID string `json:"session_id"`
	Inputs    Inputs `json:"inputs"`
	Result    Result `json:"result"`
	// SelectedPreset is set when the tip field holds a preset exactly.
	SelectedPreset *int  `json:"selected_preset,omitempty"`
	CreatedAt      int64 `json:"created_at"`
	UpdatedAt      int64 `json:"updated_at"`
}

type CalculateRequest struct {
	Bill          string `json:"bill"`
	TipPercentage string `json:"tip_percentage"`
	PartyCount    string `json:"party_count"`
}

type CalculateResponse struct {
	Result Result `json:"result"`
}

type ListPresetsRequest struct{}

type ListPresetsResponse struct {
	Presets []int `json:"presets"`
}

type CreateSessionRequest struct{}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type UpdateFieldRequest struct {
	SessionID string `json:"session_id"`
	// Field is one of "bill", "tip_percentage", "party_count".
	Field string `json:"field"`
	Value string `json:"value"`
}

type SelectPresetRequest struct {
	SessionID string `json:"session_id"`
	Percent   int    `json:"percent"`
}

type ResetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type CloseSessionRequest struct {
	SessionID string `json:"session_id"`
}

type CloseSessionResponse struct{}

// SessionResponse is returned by every RPC that reads or edits a session.
type SessionResponse struct {
	Session Session `json:"session"`
}
