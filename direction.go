package pushbullet

import "fmt"

// Direction records how a push relates to the account that sees it.
type Direction string

const (
	DirectionSelf     Direction = "self"
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// parseDirection maps a wire string to a Direction. Matching is exact: no
// case folding, no numeric form.
func parseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionSelf, DirectionOutgoing, DirectionIncoming:
		return d, nil
	default:
		return "", &DecodeError{Key: "direction", Message: fmt.Sprintf("unrecognized push direction %q", s)}
	}
}
