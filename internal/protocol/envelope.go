// Package protocol defines the websocket messages exchanged between the
// host and its clients.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrBadPayload = errors.New("invalid payload")

// Envelope is the standard WebSocket message wrapper.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope creates an envelope with a JSON-encoded payload.
func NewEnvelope(typ string, payload interface{}) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: typ, Payload: data}, nil
}

// MustEnvelope is like NewEnvelope but panics on error.
func MustEnvelope(typ string, payload interface{}) Envelope {
	e, err := NewEnvelope(typ, payload)
	if err != nil {
		panic(err)
	}
	return e
}

// Decode unmarshals the payload into v. An empty payload leaves v as is.
func (e Envelope) Decode(v interface{}) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%w for %s: %v", ErrBadPayload, e.Type, err)
	}
	return nil
}
