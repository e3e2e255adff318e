package pushbullet

import "github.com/go-json-experiment/json"

// MarshalJSON renders a new push in the shape the push-creation endpoint
// accepts. source_device_iden and guid are always emitted, null when unset;
// the target contributes its own key, or none for a broadcast.
func (p NewPush) MarshalJSON() ([]byte, error) {
	w := map[string]any{
		"source_device_iden": p.SourceDevice,
		"guid":               p.GUID,
	}

	switch t := p.Target.(type) {
	case TargetAll:
		// No addressing key: the server broadcasts by default.
	case TargetDevice:
		w["device_iden"] = t.Device
	case TargetEmail:
		w["email"] = t.Email
	case TargetChannel:
		w["channel_tag"] = t.Tag
	case TargetClient:
		w["client_iden"] = t.Client
	}

	switch d := p.Data.(type) {
	case Note:
		w["type"] = "note"
		w["title"] = d.Title
		w["body"] = d.Body
	case Link:
		w["type"] = "link"
		w["title"] = d.Title
		w["body"] = d.Body
		w["url"] = d.URL
	case File:
		// File pushes carry no title key on the wire, unlike note and link.
		w["type"] = "file"
		w["body"] = d.Body
		w["file_name"] = d.Name
		w["file_type"] = d.Type
		w["file_url"] = d.URL
	}

	return json.Marshal(w)
}
