// Package bjtime provides deterministic time computation and Chinese-facing
// formatting over a fixed UTC+8 zone, for chat-style applications: current
// time and date retrieval, day-period classification, timestamp formatting,
// time-string parsing, delta decomposition, same-day comparison,
// next-occurrence lookup, and humanized relative time.
//
// All parsing, rendering, and comparison happens in the Beijing zone
// regardless of the zone carried by the inputs.
package bjtime

import (
	"time"

	"github.com/pkg/errors"
)

// Layouts for the human-facing formats.
const (
	// LayoutDateTime renders a full instant, e.g. "2023-11-15 14:30:00".
	LayoutDateTime = "2006-01-02 15:04:05"

	// LayoutDate renders a calendar date, e.g. "2023-11-15".
	LayoutDate = "2006-01-02"

	// LayoutClock renders a bare time of day, e.g. "14:30".
	LayoutClock = "15:04"
)

// Beijing is the fixed UTC+8 zone used by every operation. A fixed offset
// keeps the package independent of host tzdata; Asia/Shanghai has observed
// no DST since 1991, so the offset is exact for current dates.
var Beijing = time.FixedZone("CST", 8*60*60)

var (
	// ErrInvalidInput reports a non-finite timestamp passed to FormatTimestamp.
	ErrInvalidInput = errors.New("invalid timestamp")

	// ErrInvalidFormat reports a time string that matches neither accepted format.
	ErrInvalidFormat = errors.New("invalid time format")
)

// Period is a coarse classification of the time of day, used for greetings.
type Period string

const (
	PeriodMorning   Period = "morning"   // [05:00, 12:00)
	PeriodAfternoon Period = "afternoon" // [12:00, 20:00)
	PeriodNight     Period = "night"     // [20:00, 05:00)
)

// Delta is the decomposition of an elapsed span. Hours, Minutes, and Seconds
// are remainders after extracting the larger unit (Hours < 24, Minutes < 60,
// Seconds < 60); Days is unbounded. Every component is non-negative.
type Delta struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TimeService defines the time computation and formatting surface.
type TimeService interface {
	// Now returns the current instant converted to the Beijing zone.
	Now() time.Time

	// CurrentTime renders the current instant as "2006-01-02 15:04:05".
	CurrentTime() string

	// CurrentDate renders the current date as "2006-01-02".
	CurrentDate() string

	// CurrentPeriod classifies the current hour of day.
	CurrentPeriod() Period

	// FormatTimestamp renders epoch seconds in the Beijing zone.
	// Returns ErrInvalidInput if the value is NaN or infinite.
	FormatTimestamp(epochSeconds float64) (string, error)

	// ParseTimeString parses "2006-01-02 15:04:05" as a full instant, or
	// "15:04" as today's date at that clock time with zero seconds.
	// Reports ok=false on any mismatch, never an error.
	ParseTimeString(input string) (t time.Time, ok bool)

	// TimeDelta returns the absolute elapsed span between two instants.
	// Argument order does not affect the result.
	TimeDelta(start, end time.Time) Delta

	// IsSameDay reports whether both instants fall on the same Beijing
	// calendar date.
	IsSameDay(a, b time.Time) bool

	// NextOccurrence returns the next instant whose clock time matches
	// timeOfDay: today's occurrence if it is still ahead, otherwise
	// tomorrow's. Returns ErrInvalidFormat for unparsable input.
	NextOccurrence(timeOfDay string) (time.Time, error)

	// Humanize renders the distance between t and now, e.g. "刚刚",
	// "5分钟前", "3小时前", "昨天", "3天前", or the absolute date once the
	// distance exceeds a week.
	Humanize(t time.Time) string
}
