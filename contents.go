package pushbullet

import "github.com/marrasen/pushbullet/kinds"

// PushData is the contents of a push about to be submitted: a Note, a Link
// or a File. The union is closed.
type PushData interface {
	pushData()
}

// ReceivedData is the contents of a server-confirmed push: a Note, a Link or
// a ReceivedFile. It differs from PushData only on the file variant, which
// gains server-derived thumbnail metadata that cannot exist before upload.
type ReceivedData interface {
	receivedData()
}

// Note is a plain text push.
type Note struct {
	Title *string
	Body  string
}

// Link is a push carrying a URL with optional text around it.
type Link struct {
	Title *string
	Body  *string
	URL   kinds.URL
}

// File is a push carrying an uploaded file.
type File struct {
	Title *string
	Body  *string
	Name  string
	Type  kinds.MimeType
	URL   kinds.URL
}

// Thumbnail is the server-generated preview of an image file.
type Thumbnail struct {
	URL    kinds.URL
	Width  int
	Height int
}

// ReceivedFile is a file push as the server reports it. Image is non-nil
// only when the server produced a thumbnail.
type ReceivedFile struct {
	File
	Image *Thumbnail
}

func (Note) pushData() {}
func (Link) pushData() {}
func (File) pushData() {}

func (Note) receivedData()         {}
func (Link) receivedData()         {}
func (ReceivedFile) receivedData() {}
