// Package kinds holds the opaque value types the push model refers to:
// server-assigned identifiers, addresses and the service's timestamp format.
// The push codec treats them as black boxes with value equality and a JSON
// representation; it never inspects their contents.
package kinds

// DeviceID identifies a registered device.
type DeviceID string

func (id DeviceID) String() string { return string(id) }

// UserID identifies a user account.
type UserID string

func (id UserID) String() string { return string(id) }

// ChannelID identifies a channel.
type ChannelID string

func (id ChannelID) String() string { return string(id) }

// ChannelTag is the public, human-chosen tag of a channel. Distinct from
// ChannelID: pushes are addressed to tags, senders are reported by id.
type ChannelTag string

func (t ChannelTag) String() string { return string(t) }

// ClientID identifies an OAuth client.
type ClientID string

func (id ClientID) String() string { return string(id) }

// EmailAddress is an email address as the server reports it. No validation
// happens here; the server owns the notion of a valid address.
type EmailAddress string

func (e EmailAddress) String() string { return string(e) }

// URL is an absolute URL carried verbatim on the wire.
type URL string

func (u URL) String() string { return string(u) }

// MimeType is a MIME type string such as "image/png".
type MimeType string

func (m MimeType) String() string { return string(m) }
