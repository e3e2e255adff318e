package pushbullet

import (
	"slices"
	"testing"

	"github.com/go-json-experiment/json"

	"github.com/marrasen/pushbullet/kinds"
)

// encodeToMap marshals a new push and reads it back as a generic object.
func encodeToMap(t *testing.T, p NewPush) map[string]any {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("encoded push is not a JSON object: %v", err)
	}
	return m
}

func TestEncodeNotePush(t *testing.T) {
	p := SimpleNewPush(TargetDevice{Device: "d1"}, Note{Body: "hi"})
	m := encodeToMap(t, p)

	if got := m["device_iden"]; got != "d1" {
		t.Errorf("device_iden = %v, want d1", got)
	}
	if got := m["type"]; got != "note" {
		t.Errorf("type = %v, want note", got)
	}
	if got := m["body"]; got != "hi" {
		t.Errorf("body = %v, want hi", got)
	}
	// Unset optionals are emitted as explicit nulls.
	for _, key := range []string{"title", "source_device_iden", "guid"} {
		v, ok := m[key]
		if !ok {
			t.Errorf("key %q missing, want explicit null", key)
		} else if v != nil {
			t.Errorf("%s = %v, want null", key, v)
		}
	}
	if len(m) != 6 {
		t.Errorf("encoded object has %d keys, want 6: %v", len(m), m)
	}
}

func TestEncodeKeySets(t *testing.T) {
	targets := []struct {
		name   string
		target Target
		keys   []string
	}{
		{"all", TargetAll{}, nil},
		{"device", TargetDevice{Device: "d1"}, []string{"device_iden"}},
		{"email", TargetEmail{Email: "bob@example.com"}, []string{"email"}},
		{"channel", TargetChannel{Tag: "news"}, []string{"channel_tag"}},
		{"client", TargetClient{Client: "c1"}, []string{"client_iden"}},
	}
	title := "t"
	body := "b"
	contents := []struct {
		name string
		data PushData
		keys []string
	}{
		{"note", Note{Title: &title, Body: "b"}, []string{"type", "title", "body"}},
		{"link", Link{Title: &title, Body: &body, URL: "https://example.com"}, []string{"type", "title", "body", "url"}},
		{"file", File{Title: &title, Body: &body, Name: "cat.png", Type: "image/png", URL: "https://example.com/cat.png"}, []string{"type", "body", "file_name", "file_type", "file_url"}},
	}

	for _, tc := range targets {
		for _, cc := range contents {
			t.Run(tc.name+"/"+cc.name, func(t *testing.T) {
				m := encodeToMap(t, SimpleNewPush(tc.target, cc.data))

				want := []string{"source_device_iden", "guid"}
				want = append(want, tc.keys...)
				want = append(want, cc.keys...)
				slices.Sort(want)

				got := make([]string, 0, len(m))
				for k := range m {
					got = append(got, k)
				}
				slices.Sort(got)

				if !slices.Equal(got, want) {
					t.Errorf("key set = %v, want %v", got, want)
				}
			})
		}
	}
}

func TestEncodeFileOmitsTitle(t *testing.T) {
	title := "vacation photo"
	p := SimpleNewPush(TargetAll{}, File{
		Title: &title,
		Name:  "photo.jpg",
		Type:  "image/jpeg",
		URL:   "https://example.com/photo.jpg",
	})
	m := encodeToMap(t, p)

	if _, ok := m["title"]; ok {
		t.Error("file push encoded a title key; the wire shape has none")
	}
	if _, ok := m["file_title"]; ok {
		t.Error("file push encoded a file_title key; that key is decode-only")
	}
}

func TestEncodeCarriesSourceDeviceAndGUID(t *testing.T) {
	src := kinds.DeviceID("d9")
	guid := "dedupe-1"
	p := SimpleNewPush(TargetAll{}, Note{Body: "hi"})
	p.SourceDevice = &src
	p.GUID = &guid
	m := encodeToMap(t, p)

	if got := m["source_device_iden"]; got != "d9" {
		t.Errorf("source_device_iden = %v, want d9", got)
	}
	if got := m["guid"]; got != "dedupe-1" {
		t.Errorf("guid = %v, want dedupe-1", got)
	}
}
