package api

import (
	"encoding/json"
	"fmt"
)

// Codec marshals messages with encoding/json under the "json" name, so
// requests are sent as application/json. It replaces Connect's protojson
// codec, which only accepts generated protobuf types.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	// Connect sends an empty body for messages with no fields
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
