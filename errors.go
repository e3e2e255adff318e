package pushbullet

import "fmt"

// DecodeError describes why a server document could not be decoded. Encoding
// never fails; every error this package returns is a DecodeError.
type DecodeError struct {
	// Key is the wire key involved, when the failure concerns one key.
	Key     string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %q", e.Message, e.Key)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// errMissing reports a mandatory key that is absent or null.
func errMissing(key string) *DecodeError {
	return &DecodeError{Key: key, Message: "missing required key"}
}

// errShape reports input whose JSON shape is wrong, wrapping the parser error.
func errShape(message string, cause error) *DecodeError {
	return &DecodeError{Message: message, Cause: cause}
}

// errNoSender reports a push whose flat sender fields satisfy neither the
// user nor the channel reconstruction.
func errNoSender() *DecodeError {
	return &DecodeError{Message: "push not sent by channel or by user"}
}
