package schedule

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Blocks reports whether an appointment in this status occupies the barber's
// agenda. Cancelled and completed appointments never block new bookings.
func (s Status) Blocks() bool {
	return s == StatusConfirmed
}

func InitialStatus() Status {
	return StatusConfirmed
}
