package booking

import (
	"errors"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidStayRange = errors.New("check-out must be after check-in")
)

// StayRange is a half-open date interval [check_in, check_out): the night of
// check_out is not part of the stay, so a check-out equal to another
// booking's check-in is not a conflict.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)

	if !checkIn.Before(checkOut) {
		return StayRange{}, ErrInvalidStayRange
	}

	return StayRange{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Overlaps implements the standard half-open interval test:
// other.checkIn < r.checkOut AND other.checkOut > r.checkIn.
func (r StayRange) Overlaps(other StayRange) bool {
	return other.checkIn.Before(r.checkOut) && other.checkOut.After(r.checkIn)
}

func (r StayRange) String() string {
	return r.checkIn.Format(DateLayout) + "/" + r.checkOut.Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: value}
}

func (s SpecialRequests) String() string {
	return s.value
}

func (s SpecialRequests) IsEmpty() bool {
	return s.value == ""
}
