package reservation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"restaurant-reservations/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var timeOfDayPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return TimeOfDay{}, ErrInvalidTime
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return TimeOfDay{minutes: h*60 + m}, nil
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{minutes: hour*60 + minute}
}

func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }
func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Clock renders the time as "10:30 AM".
func (t TimeOfDay) Clock() string {
	return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC).Format("3:04 PM")
}

// ParseDate accepts YYYY-MM-DD only. The result is midnight UTC so that the
// calendar day survives storage as a DATE.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return time.Sunday, errs.Newf("unknown weekday %q", s)
}

// NormalizePhone keeps only the ASCII digits of a phone number or fragment.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaxPartySize is the largest party the people column (INTEGER) can hold.
const MaxPartySize = math.MaxInt32

// PartySize is the party size as it arrived from the caller.
type PartySize struct {
	Value   int
	Present bool
	// Integer is false when the submitted value was not a whole JSON number.
	Integer bool
}

func Party(n int) PartySize {
	return PartySize{Value: n, Present: true, Integer: true}
}
