package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("customer email is invalid")
	ErrInvalidGuestCount    = errors.New("guest count must be at least 1")
	ErrNegativeTotalPrice   = errors.New("total price cannot be negative")
)

// Customer is the contact information submitted with a booking. There is no
// user account behind it; bookings are anonymous customer submissions.
type Customer struct {
	Name  string
	Email string
	Phone *string
}

type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	customer        Customer
	stay            StayRange
	guests          int
	totalPrice      float64
	status          Status
	specialRequests SpecialRequests
}

// NewBooking builds a customer-submitted booking. The status is always
// pending: confirmed/cancelled are administrative transitions applied later,
// and any status a caller supplies alongside the form is ignored.
func NewBooking(
	roomID uuid.UUID,
	customer Customer,
	stay StayRange,
	guests int,
	totalPrice float64,
	specialRequests SpecialRequests,
) (*Booking, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, ErrMissingCustomerName
	}
	email := strings.TrimSpace(customer.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidCustomerEmail
	}
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if totalPrice < 0 {
		return nil, ErrNegativeTotalPrice
	}

	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = email

	return &Booking{
		id:              uuid.New(),
		roomID:          roomID,
		customer:        customer,
		stay:            stay,
		guests:          guests,
		totalPrice:      totalPrice,
		status:          StatusPending,
		specialRequests: specialRequests,
	}, nil
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) RoomID() uuid.UUID                { return b.roomID }
func (b *Booking) Customer() Customer               { return b.customer }
func (b *Booking) Stay() StayRange                  { return b.stay }
func (b *Booking) Guests() int                      { return b.guests }
func (b *Booking) TotalPrice() float64              { return b.totalPrice }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
