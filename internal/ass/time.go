package ass

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Time is a subtitle timestamp in centiseconds, the native resolution of
// the container's H:MM:SS.CC field.
type Time uint32

// ParseTime parses an event timestamp of the form H:MM:SS.CC.
// Hours may exceed one digit; minutes and seconds must stay below 60.
func ParseTime(s string) (Time, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed timestamp %q", s)
	}
	hours, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: bad hours", s)
	}
	minutes, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || minutes >= 60 {
		return 0, fmt.Errorf("malformed timestamp %q: bad minutes", s)
	}
	secPart, centiPart, ok := strings.Cut(parts[2], ".")
	if !ok {
		return 0, fmt.Errorf("malformed timestamp %q: missing centiseconds", s)
	}
	seconds, err := strconv.ParseUint(secPart, 10, 32)
	if err != nil || seconds >= 60 {
		return 0, fmt.Errorf("malformed timestamp %q: bad seconds", s)
	}
	if len(centiPart) != 2 {
		return 0, fmt.Errorf("malformed timestamp %q: centiseconds must be two digits", s)
	}
	centis, err := strconv.ParseUint(centiPart, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: bad centiseconds", s)
	}
	total := hours*360000 + minutes*6000 + seconds*100 + centis
	v, convErr := safecast.Conv[uint32](total)
	if convErr != nil {
		return 0, fmt.Errorf("timestamp %q overflows: %w", s, convErr)
	}
	return Time(v), nil
}

// String renders the timestamp back in H:MM:SS.CC form.
func (t Time) String() string {
	cs := uint32(t)
	return fmt.Sprintf("%d:%02d:%02d.%02d", cs/360000, cs/6000%60, cs/100%60, cs%100)
}
