// Package pushbullet models pushes — the notification messages the service
// exchanges — and their JSON wire format.
//
// A push exists in one of two phases. A new push is client-authored and not
// yet submitted; an existing push is server-confirmed and carries metadata
// only the server can assign (id, timestamps, sender). The two phases are
// separate types, [NewPush] and [ExistingPush], so the phase rules hold at
// compile time: a new push cannot carry server fields, an existing push
// cannot lack them. Fields common to both live in the embedded [PushCore].
//
// The codec is as asymmetric as the phases: new pushes encode but never
// decode, existing pushes decode but never encode. The service never sends a
// new push over the wire and never accepts an existing one back.
package pushbullet

import "github.com/marrasen/pushbullet/kinds"

// PushID is the server-assigned identifier of an existing push. Its String
// form is what transport code places in URL paths.
type PushID string

func (id PushID) String() string { return string(id) }

// PushCore holds the fields both phases carry.
type PushCore struct {
	// SourceDevice is the device the push was sent from, when one was.
	SourceDevice *kinds.DeviceID
	// GUID is a client-chosen idempotency token. The server deduplicates
	// submissions that repeat one.
	GUID *string
}

// Core returns the phase-invariant fields. It makes every push phase satisfy
// [Push].
func (c PushCore) Core() PushCore { return c }

// Push is the read-only view of the fields shared by both phases.
type Push interface {
	Core() PushCore
}

// NewPush is a client-authored push that has not been submitted yet.
type NewPush struct {
	PushCore
	Target Target
	Data   PushData
}

// ExistingPush is a push as the server reports it.
type ExistingPush struct {
	PushCore
	ID        PushID
	Active    bool
	Created   kinds.Time
	Modified  kinds.Time
	Dismissed bool
	Direction Direction
	Sender    Sender
	Receiver  *Receiver
	Target    DeliveredTarget
	Data      ReceivedData
}

// SimpleNewPush builds a new push with no source device and no guid. This is
// the construction path for outgoing pushes.
func SimpleNewPush(target Target, data PushData) NewPush {
	return NewPush{Target: target, Data: data}
}

// PushList is one page of existing pushes, in the order the server returned
// them. The wire format wraps the array in an object under "pushes".
type PushList []ExistingPush
