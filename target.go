package pushbullet

import "github.com/marrasen/pushbullet/kinds"

// Target selects who receives a push at submission time. It is a closed
// union: exactly the five addressing modes below, nothing else.
type Target interface {
	target()
}

// TargetAll broadcasts to every device on the account.
type TargetAll struct{}

// TargetDevice addresses a single device.
type TargetDevice struct {
	Device kinds.DeviceID
}

// TargetEmail addresses a user by email. The server resolves the address;
// non-users receive the push as an email.
type TargetEmail struct {
	Email kinds.EmailAddress
}

// TargetChannel publishes to a channel, addressed by its public tag.
type TargetChannel struct {
	Tag kinds.ChannelTag
}

// TargetClient pushes to all users of an OAuth client.
type TargetClient struct {
	Client kinds.ClientID
}

func (TargetAll) target()     {}
func (TargetDevice) target()  {}
func (TargetEmail) target()   {}
func (TargetChannel) target() {}
func (TargetClient) target()  {}

// DeliveredTarget is what the server reports about where a push went. The
// five submission modes collapse to two: a specific device, or none.
type DeliveredTarget interface {
	deliveredTarget()
}

// Broadcast means the push targeted no specific device.
type Broadcast struct{}

// ToDevice means the push targeted one device.
type ToDevice struct {
	Device kinds.DeviceID
}

func (Broadcast) deliveredTarget() {}
func (ToDevice) deliveredTarget()  {}
