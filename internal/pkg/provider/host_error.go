package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HostError is an error the host application reported inside a result body.
type HostError struct {
	Code    int             `json:"code,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *HostError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("host error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("host error: %s", e.Message)
}

type errorEnvelope struct {
	Error *HostError `json:"error"`
}

// Decode turns an error-shaped host result into *HostError and otherwise
// unmarshals raw into result. A nil result only performs the error check.
func Decode(raw json.RawMessage, result any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope errorEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Error != nil {
			return envelope.Error
		}
	}

	if result == nil || len(trimmed) == 0 {
		return nil
	}

	if err := json.Unmarshal(trimmed, result); err != nil {
		return fmt.Errorf("could not unmarshal host result: %w", err)
	}

	return nil
}
