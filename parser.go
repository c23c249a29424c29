package bjtime

import (
	"time"

	"github.com/pkg/errors"
)

// parseFormats are the two accepted input shapes, tried in order. A bare
// clock time is combined with today's Beijing date at parse time.
var parseFormats = []string{
	LayoutDateTime,
	LayoutClock,
}

// ParseTimeString parses input as a full "2006-01-02 15:04:05" instant or a
// bare "15:04" clock time dated to today. ok is false on any mismatch or
// out-of-range field. Callers that need a hard failure use NextOccurrence.
func (s *Service) ParseTimeString(input string) (time.Time, bool) {
	now := s.Now()

	for _, format := range parseFormats {
		t, err := time.ParseInLocation(format, input, s.loc)
		if err != nil {
			continue
		}
		if format == LayoutClock {
			return time.Date(now.Year(), now.Month(), now.Day(),
				t.Hour(), t.Minute(), 0, 0, s.loc), true
		}
		return t, true
	}

	return time.Time{}, false
}

// NextOccurrence returns the next instant whose clock time matches
// timeOfDay. If that clock time has already passed today, the parsed
// instant is rolled forward one day; the comparison ignores the date part
// entirely, so a full-form input with a stale date also rolls by one day
// at most.
func (s *Service) NextOccurrence(timeOfDay string) (time.Time, error) {
	target, ok := s.ParseTimeString(timeOfDay)
	if !ok {
		return time.Time{}, errors.Wrapf(ErrInvalidFormat, "unable to parse time: %s", timeOfDay)
	}

	if clockSeconds(s.Now()) > clockSeconds(target) {
		target = target.AddDate(0, 0, 1)
	}

	return target, nil
}

// clockSeconds collapses an instant to seconds since its own midnight.
func clockSeconds(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
