package pushbullet

import (
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/marrasen/pushbullet/kinds"
)

// pushWire is the flat shape the server sends for one push. Every field is a
// pointer so that an absent and a null key both read back as nil; the typed
// model is rebuilt from this by the decode helpers below.
type pushWire struct {
	Iden             *PushID         `json:"iden"`
	Active           *bool           `json:"active"`
	Created          *kinds.Time     `json:"created"`
	Modified         *kinds.Time     `json:"modified"`
	Dismissed        *bool           `json:"dismissed"`
	Direction        *string         `json:"direction"`
	SourceDeviceIden *kinds.DeviceID `json:"source_device_iden"`
	TargetDeviceIden *kinds.DeviceID `json:"target_device_iden"`
	GUID             *string         `json:"guid"`

	SenderIden            *kinds.UserID       `json:"sender_iden"`
	SenderEmail           *kinds.EmailAddress `json:"sender_email"`
	SenderEmailNormalized *kinds.EmailAddress `json:"sender_email_normalized"`
	SenderName            *string             `json:"sender_name"`
	ClientIden            *kinds.ClientID     `json:"client_iden"`
	ChannelIden           *kinds.ChannelID    `json:"channel_iden"`

	ReceiverIden            *kinds.UserID       `json:"receiver_iden"`
	ReceiverEmail           *kinds.EmailAddress `json:"receiver_email"`
	ReceiverEmailNormalized *kinds.EmailAddress `json:"receiver_email_normalized"`

	Type      *string         `json:"type"`
	Title     *string         `json:"title"`
	Body      *string         `json:"body"`
	URL       *kinds.URL      `json:"url"`
	FileTitle *string         `json:"file_title"`
	FileName  *string         `json:"file_name"`
	FileType  *kinds.MimeType `json:"file_type"`
	FileURL   *kinds.URL      `json:"file_url"`

	ImageURL    *kinds.URL `json:"image_url"`
	ImageWidth  *int       `json:"image_width"`
	ImageHeight *int       `json:"image_height"`
}

// required dereferences a mandatory wire field or reports the missing key.
func required[T any](p *T, key string) (T, error) {
	if p == nil {
		var zero T
		return zero, errMissing(key)
	}
	return *p, nil
}

// UnmarshalJSON decodes one server-reported push. A push decodes completely
// or not at all: any missing mandatory key, unknown discriminator or
// unreconstructable sender fails the whole push.
func (p *ExistingPush) UnmarshalJSON(data []byte) error {
	var w pushWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errShape("push must be a JSON object", err)
	}

	id, err := required(w.Iden, "iden")
	if err != nil {
		return err
	}
	active, err := required(w.Active, "active")
	if err != nil {
		return err
	}
	created, err := required(w.Created, "created")
	if err != nil {
		return err
	}
	modified, err := required(w.Modified, "modified")
	if err != nil {
		return err
	}
	dismissed, err := required(w.Dismissed, "dismissed")
	if err != nil {
		return err
	}
	dir, err := required(w.Direction, "direction")
	if err != nil {
		return err
	}
	direction, err := parseDirection(dir)
	if err != nil {
		return err
	}
	contents, err := decodeReceivedData(&w)
	if err != nil {
		return err
	}
	sender, err := decodeSender(&w)
	if err != nil {
		return err
	}

	target := DeliveredTarget(Broadcast{})
	if w.TargetDeviceIden != nil {
		target = ToDevice{Device: *w.TargetDeviceIden}
	}

	*p = ExistingPush{
		PushCore: PushCore{
			SourceDevice: w.SourceDeviceIden,
			GUID:         w.GUID,
		},
		ID:        id,
		Active:    active,
		Created:   created,
		Modified:  modified,
		Dismissed: dismissed,
		Direction: direction,
		Sender:    sender,
		Receiver:  decodeReceiver(&w),
		Target:    target,
		Data:      contents,
	}
	return nil
}

// decodeReceivedData dispatches on the type discriminator. Note that file
// pushes keep their title under "file_title", not "title".
func decodeReceivedData(w *pushWire) (ReceivedData, error) {
	typ, err := required(w.Type, "type")
	if err != nil {
		return nil, err
	}
	switch typ {
	case "note":
		body, err := required(w.Body, "body")
		if err != nil {
			return nil, err
		}
		return Note{Title: w.Title, Body: body}, nil
	case "link":
		url, err := required(w.URL, "url")
		if err != nil {
			return nil, err
		}
		return Link{Title: w.Title, Body: w.Body, URL: url}, nil
	case "file":
		name, err := required(w.FileName, "file_name")
		if err != nil {
			return nil, err
		}
		mime, err := required(w.FileType, "file_type")
		if err != nil {
			return nil, err
		}
		url, err := required(w.FileURL, "file_url")
		if err != nil {
			return nil, err
		}
		var image *Thumbnail
		if w.ImageURL != nil && w.ImageWidth != nil && w.ImageHeight != nil {
			image = &Thumbnail{URL: *w.ImageURL, Width: *w.ImageWidth, Height: *w.ImageHeight}
		}
		return ReceivedFile{
			File:  File{Title: w.FileTitle, Body: w.Body, Name: name, Type: mime, URL: url},
			Image: image,
		}, nil
	default:
		return nil, &DecodeError{Key: "type", Message: fmt.Sprintf("unrecognized push type %q", typ)}
	}
}

// decodeSender rebuilds the untagged sender union. The user reconstruction
// is tried first; a payload that also satisfies the channel rule is
// malformed, and the user reading wins.
func decodeSender(w *pushWire) (Sender, error) {
	if w.SenderIden != nil && w.SenderEmail != nil && w.SenderEmailNormalized != nil && w.SenderName != nil {
		return UserSender{
			User:            *w.SenderIden,
			Client:          w.ClientIden,
			Email:           *w.SenderEmail,
			EmailNormalized: *w.SenderEmailNormalized,
			Name:            *w.SenderName,
		}, nil
	}
	if w.ChannelIden != nil && w.SenderName != nil {
		return ChannelSender{Channel: *w.ChannelIden, Name: *w.SenderName}, nil
	}
	return nil, errNoSender()
}

// decodeReceiver yields a receiver only when all three keys are present.
// Partial presence is not an error: the receiver is an optional relationship,
// unlike the sender.
func decodeReceiver(w *pushWire) *Receiver {
	if w.ReceiverIden == nil || w.ReceiverEmail == nil || w.ReceiverEmailNormalized == nil {
		return nil
	}
	return &Receiver{
		User:            *w.ReceiverIden,
		Email:           *w.ReceiverEmail,
		EmailNormalized: *w.ReceiverEmailNormalized,
	}
}

// UnmarshalJSON decodes one page of pushes from the {"pushes": [...]}
// wrapper object.
func (l *PushList) UnmarshalJSON(data []byte) error {
	var w struct {
		Pushes *[]ExistingPush `json:"pushes"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return errShape("push list must be a JSON object", err)
	}
	if w.Pushes == nil {
		return errMissing("pushes")
	}
	*l = *w.Pushes
	return nil
}
