package domain

import (
	"regexp"
	"time"
)

var (
	datePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// ValidateDate parses a DD.MM.YYYY date. Calendar range is checked by
// round-tripping through time.Date, so 31.02.2026 is rejected even
// though it matches the pattern.
func ValidateDate(text string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, ErrInvalidDate
	}
	parsed, err := time.Parse("02.01.2006", text)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	// time.Parse normalizes out-of-range components (31.02 -> 03.03),
	// so require the formatted result to match the input exactly.
	if parsed.Format("02.01.2006") != text {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

// ValidateTime checks an HH:MM clock time by pattern match alone,
// hours 00-23 and minutes 00-59. Returns the input unchanged on success.
func ValidateTime(text string) (string, error) {
	if !timePattern.MatchString(text) {
		return "", ErrInvalidTime
	}
	return text, nil
}

// ValidateTimeOrder requires end to be strictly later than start.
// Both arguments are zero-padded HH:MM, so lexicographic comparison is
// exact. Operations crossing midnight are not representable; this is a
// known limitation, not a bug.
func ValidateTimeOrder(start, end string) error {
	if end <= start {
		return ErrEndNotAfterStart
	}
	return nil
}
