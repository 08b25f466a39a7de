// ABOUTME: Default-filling helpers for optional wire fields
// ABOUTME: Absent values collapse to the zero value of the domain field
package mapper

import "time"

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func integer(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func flag(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// timestamp parses an ISO-8601 value. Backends emit both offset-qualified and
// naive timestamps; naive ones are read as UTC. Unparseable values yield the
// zero time.
func timestamp(p *string) time.Time {
	if p == nil || *p == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, *p); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
