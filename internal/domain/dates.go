package domain

import "time"

const secondsPerDay = 24 * 60 * 60

// DateLayout is the wire format of check-in, check-out and stay dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to a calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today(now time.Time) time.Time {
	return DateOf(now.UTC())
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// NightsBetween counts whole days from checkIn to checkOut. It is negative
// when checkOut precedes checkIn.
func NightsBetween(checkIn, checkOut time.Time) int {
	secs := DateOf(checkOut).Unix() - DateOf(checkIn).Unix()
	return int(secs / secondsPerDay)
}

// DateRange is a half-open stay interval [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: DateOf(checkIn), CheckOut: DateOf(checkOut)}
	if !r.CheckIn.Before(r.CheckOut) {
		return DateRange{}, ErrDateRangeInvalid
	}
	return r, nil
}

// Overlaps reports whether two half-open ranges share at least one night.
// A stay ending on the day another begins does not overlap it.
func (r DateRange) Overlaps(o DateRange) bool {
	return o.CheckOut.After(r.CheckIn) && o.CheckIn.Before(r.CheckOut)
}

func (r DateRange) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// ValidateCheckIn rejects check-ins before today unless allowPast is set.
func ValidateCheckIn(checkIn, today time.Time, allowPast bool) error {
	if allowPast {
		return nil
	}
	if DateOf(checkIn).Before(DateOf(today)) {
		return ErrCheckInPast
	}
	return nil
}

// ValidateStayLength enforces a minimum of one night and, when maxNights is
// positive, an upper bound.
func ValidateStayLength(r DateRange, maxNights int) error {
	nights := r.Nights()
	if nights < 1 {
		return ErrDateRangeInvalid
	}
	if maxNights > 0 && nights > maxNights {
		return newError(ErrValidation, "maximum stay length exceeded")
	}
	return nil
}

func ValidateStayDate(stay *time.Time, today time.Time) error {
	if stay == nil {
		return nil
	}
	if DateOf(*stay).After(DateOf(today)) {
		return ErrFutureStayDate
	}
	return nil
}
