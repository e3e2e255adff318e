// Package stream decodes the realtime event stream the service exposes over
// a websocket, and provides a listener for it. The stream tells a client
// when to re-fetch: the push and device collections have changed (tickle),
// an ephemeral push arrived (push), or nothing happened and the connection
// is alive (nop).
package stream

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// MessageType discriminates stream envelopes.
type MessageType string

const (
	// TypeNop is the periodic heartbeat.
	TypeNop MessageType = "nop"
	// TypeTickle signals that a collection changed server-side.
	TypeTickle MessageType = "tickle"
	// TypePush carries an ephemeral push inline.
	TypePush MessageType = "push"
)

// Tickle subtypes: which collection to re-fetch.
const (
	SubtypePush   = "push"
	SubtypeDevice = "device"
)

// Message is one stream envelope. Subtype is set on tickles; Push is set on
// ephemeral pushes and forwarded raw, since ephemeral payloads are
// client-defined and this layer does not interpret them.
type Message struct {
	Type    MessageType    `json:"type"`
	Subtype string         `json:"subtype,omitzero"`
	Push    jsontext.Value `json:"push,omitzero"`
}

// parseMessage decodes and validates one stream envelope.
func parseMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("malformed stream message: %w", err)
	}
	switch msg.Type {
	case TypeNop, TypeTickle, TypePush:
		return msg, nil
	default:
		return Message{}, fmt.Errorf("unrecognized stream message type %q", msg.Type)
	}
}
