package kinds

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Time is a point in time as the service represents it on the wire: a JSON
// number of seconds since the Unix epoch, with a fractional part.
type Time struct {
	time.Time
}

// Unix converts epoch seconds (with fraction) to a Time.
func Unix(sec float64) Time {
	whole, frac := math.Modf(sec)
	return Time{time.Unix(int64(whole), int64(frac*1e9)).UTC()}
}

// Equal reports whether two Times denote the same instant.
func (t Time) Equal(u Time) bool { return t.Time.Equal(u.Time) }

// MarshalJSON encodes the time as epoch seconds with microsecond precision,
// matching the precision the server emits.
func (t Time) MarshalJSON() ([]byte, error) {
	sec := float64(t.UnixNano()) / 1e9
	return []byte(strconv.FormatFloat(sec, 'f', 6, 64)), nil
}

// UnmarshalJSON decodes a JSON number of epoch seconds.
func (t *Time) UnmarshalJSON(data []byte) error {
	sec, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("timestamp must be epoch seconds: %w", err)
	}
	*t = Unix(sec)
	return nil
}
