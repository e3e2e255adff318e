package pushbullet

import "github.com/marrasen/pushbullet/kinds"

// Sender is who originated a server-confirmed push: a user account or a
// channel. The wire format carries no tag for this union; it is rebuilt from
// flat optional keys, user first (see decodeSender).
type Sender interface {
	sender()
}

// UserSender is a push sent by a user account.
type UserSender struct {
	User            kinds.UserID
	Client          *kinds.ClientID
	Email           kinds.EmailAddress
	EmailNormalized kinds.EmailAddress
	Name            string
}

// ChannelSender is a push published by a channel.
type ChannelSender struct {
	Channel kinds.ChannelID
	Name    string
}

func (UserSender) sender()    {}
func (ChannelSender) sender() {}

// Receiver is the user a push was delivered to. It is absent when the push
// was not received by a user.
type Receiver struct {
	User            kinds.UserID
	Email           kinds.EmailAddress
	EmailNormalized kinds.EmailAddress
}
