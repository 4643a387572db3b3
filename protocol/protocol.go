// Package protocol defines the wire format spoken with the game engine.
//
// Every exchange is one request frame answered by exactly one response
// frame, in strict FIFO order. A request carries exactly one non-nil
// payload pointer; the engine mirrors it in the response and reports the
// session status alongside.
package protocol

import (
	"encoding/json"
	"fmt"
)

const Version = "1"

// Status is the engine's session state reported on every response.
type Status string

const (
	StatusLaunched Status = "launched"
	StatusInitGame Status = "init_game"
	StatusInGame   Status = "in_game"
	StatusEnded    Status = "ended"
	StatusQuit     Status = "quit"
)

// Encode marshals a frame for the transport.
func Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}
	return b, nil
}

// DecodeResponse parses a single response frame.
func DecodeResponse(b []byte) (*Response, error) {
	var res Response
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &res, nil
}
