package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Normalizer repairs the heterogeneous timestamp strings the placement engine
// produces, turning them into canonical RFC3339 with an explicit offset. The
// offset applied is the configured timezone's offset at the date hint.
type Normalizer struct {
	loc  *time.Location
	date time.Time // date hint for bare times
}

func NewNormalizer(loc *time.Location, date time.Time) *Normalizer {
	return &Normalizer{loc: loc, date: date}
}

// WithDate returns a normalizer using a different date hint, for entries that
// belong to a day other than the run's today.
func (n *Normalizer) WithDate(date time.Time) *Normalizer {
	return &Normalizer{loc: n.loc, date: date}
}

var (
	isoWithOffsetRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:Z|[+-]\d{2}:\d{2})$`)
	isoNoOffsetRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})(?::(\d{2}))?$`)
	bareTimeRe      = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	spaceSplitRe    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})\s+(\d{1,2})(?::(\d{2}))?(?::(\d{2}))?$`)
)

// Fix normalizes a timestamp string. The second return value reports whether
// a known shape matched; on false the input comes back unchanged and the
// caller decides whether to warn or drop. Fix never fails hard: downstream
// validation filters out anything that still does not parse.
func (n *Normalizer) Fix(s string) (string, bool) {
	switch {
	case isoWithOffsetRe.MatchString(s):
		return s, true

	case isoNoOffsetRe.MatchString(s):
		m := isoNoOffsetRe.FindStringSubmatch(s)
		return n.assemble(m[1], m[2], m[3], m[4], m[5], m[6]), true

	case bareTimeRe.MatchString(s):
		m := bareTimeRe.FindStringSubmatch(s)
		return n.assemble(
			fmt.Sprintf("%04d", n.date.Year()),
			fmt.Sprintf("%02d", int(n.date.Month())),
			fmt.Sprintf("%02d", n.date.Day()),
			m[1], m[2], m[3]), true

	case spaceSplitRe.MatchString(s):
		m := spaceSplitRe.FindStringSubmatch(s)
		return n.assemble(m[1], m[2], m[3], m[4], m[5], m[6]), true
	}
	return s, false
}

func (n *Normalizer) assemble(year, month, day, hour, minute, second string) string {
	atoi := func(s string) int {
		v, _ := strconv.Atoi(s)
		return v
	}
	t := time.Date(atoi(year), time.Month(atoi(month)), atoi(day),
		atoi(hour), atoi(minute), atoi(second), 0, n.loc)
	return t.Format(time.RFC3339)
}
