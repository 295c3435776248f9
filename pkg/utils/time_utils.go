package utils

import "time"

// Epoch values are stored as seconds everywhere in the DB.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns zero time for t<=0 so callers can decide rendering.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// DaysUntil returns whole days from now until t, rounding partial days up and
// clamping negatives (clock skew, already-elapsed deadlines) to zero.
func DaysUntil(t time.Time, now time.Time) int {
	if t.IsZero() || !t.After(now) {
		return 0
	}
	d := t.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
