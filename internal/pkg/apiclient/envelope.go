package apiclient

import (
	"encoding/json"
	"fmt"
)

// envelope is the discriminated union of response shapes the API has shipped
// over time: the canonical {success,data}, the legacy {records}, and bare
// payloads.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Records json.RawMessage `json:"records,omitempty"`
	Error   *errorDetail    `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodePayload unmarshals a response body into out, tolerating every shape
// the backend has returned: {success,data}, {records}, or the value itself.
func DecodePayload(raw []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Data != nil {
			return json.Unmarshal(env.Data, out)
		}
		if env.Records != nil {
			return json.Unmarshal(env.Records, out)
		}
		// An explicit success envelope with no payload decodes to the zero value.
		if env.Success != nil {
			return nil
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}
	return nil
}
