package bjtime

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Service implements TimeService over the fixed Beijing zone.
type Service struct {
	loc *time.Location
	now func() time.Time
}

// NewService creates a time service backed by the wall clock.
func NewService() *Service {
	return &Service{
		loc: Beijing,
		now: time.Now,
	}
}

// Now returns the current instant in the Beijing zone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// CurrentTime renders the current instant as "2006-01-02 15:04:05".
func (s *Service) CurrentTime() string {
	return s.Now().Format(LayoutDateTime)
}

// CurrentDate renders the current date as "2006-01-02".
func (s *Service) CurrentDate() string {
	return s.Now().Format(LayoutDate)
}

// CurrentPeriod classifies the current hour of day.
func (s *Service) CurrentPeriod() Period {
	hour := s.Now().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 20:
		return PeriodAfternoon
	default:
		return PeriodNight
	}
}

// FormatTimestamp renders epoch seconds in the Beijing zone. Fractional
// seconds are truncated; NaN and infinities are rejected.
func (s *Service) FormatTimestamp(epochSeconds float64) (string, error) {
	if math.IsNaN(epochSeconds) || math.IsInf(epochSeconds, 0) {
		return "", errors.Wrapf(ErrInvalidInput, "timestamp %v", epochSeconds)
	}
	t := time.Unix(int64(math.Floor(epochSeconds)), 0).In(s.loc)
	return t.Format(LayoutDateTime), nil
}

// TimeDelta decomposes the absolute span between two instants.
func (s *Service) TimeDelta(start, end time.Time) Delta {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	total := int64(d / time.Second)
	return Delta{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// IsSameDay reports whether both instants share a Beijing calendar date.
func (s *Service) IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.In(s.loc).Date()
	by, bm, bd := b.In(s.loc).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's Beijing calendar date.
func (s *Service) StartOfDay(t time.Time) time.Time {
	t = t.In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// Ensure Service implements TimeService.
var _ TimeService = (*Service)(nil)
