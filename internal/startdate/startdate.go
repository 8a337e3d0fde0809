// Package startdate resolves the date the counter counts from.
package startdate

import (
	"errors"
	"fmt"
	"time"

	"github.com/emmabritton/countup/internal/countup"
)

// DateLayout is the accepted command-line date format.
const DateLayout = "2006-01-02"

// defaultDate is used when no date is supplied.
var defaultDate = time.Date(2022, time.November, 25, 0, 0, 0, 0, time.UTC)

// ErrInvalidInput is wrapped by Resolve for dates that cannot be parsed or
// lie in the future. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Clock abstracts time.Now so elapsed-day math is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock with the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Start is a resolved counting origin.
type Start struct {
	Date  time.Time // midnight UTC
	Days  int       // whole days elapsed as of resolution
	Label string    // DD/MM/YYYY, for the heading
}

// Resolve turns an optional YYYY-MM-DD argument into a Start. An empty arg
// selects the built-in default date. Unparseable and future dates fail with
// an error wrapping ErrInvalidInput; resolution happens before any UI
// exists, so the caller refuses to start.
func Resolve(arg string, clock Clock) (Start, error) {
	if clock == nil {
		clock = RealClock{}
	}

	date := defaultDate
	if arg != "" {
		parsed, err := time.ParseInLocation(DateLayout, arg, time.UTC)
		if err != nil {
			return Start{}, fmt.Errorf("%w: date %q is not in %s format", ErrInvalidInput, arg, DateLayout)
		}
		date = parsed
	}

	now := clock.Now()
	if date.After(now) {
		return Start{}, fmt.Errorf("%w: date %s is in the future", ErrInvalidInput, date.Format(DateLayout))
	}

	return Start{
		Date:  date,
		Days:  countup.DaysBetween(date, now),
		Label: fmt.Sprintf("%02d/%02d/%d", date.Day(), date.Month(), date.Year()),
	}, nil
}
