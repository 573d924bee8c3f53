package youtube

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadDuration reports an unparseable ISO-8601 duration from the videos
// endpoint. Callers must surface it rather than render a wrong label.
var ErrBadDuration = errors.New("malformed ISO-8601 duration")

// isoDurationRE matches the compact PT#H#M#S notation YouTube uses for video
// durations. Every unit is optional but at least one must be present.
var isoDurationRE = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converts "PT1H5M30S" into the human label "1h 5m 30s".
// Zero-valued leading units are omitted ("PT45S" renders as "45s").
func FormatDuration(iso string) (string, error) {
	m := isoDurationRE.FindStringSubmatch(iso)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return "", fmt.Errorf("%w: %q", ErrBadDuration, iso)
	}

	var parts []string
	for i, unit := range []string{"h", "m", "s"} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrBadDuration, iso)
		}
		parts = append(parts, strconv.Itoa(n)+unit)
	}
	return strings.Join(parts, " "), nil
}
