package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks returns whether a booking in this status occupies its room for the
// purpose of availability checks. Cancelled bookings never block.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}
