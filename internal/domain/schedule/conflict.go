package schedule

import (
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
)

// CheckConflict decide se um novo atendimento pode entrar na agenda.
//
// Pure decision function: the caller supplies the barber's existing
// appointments (any window wide enough to contain every possible overlap) and
// is responsible for persisting only when the check passes. excludeID skips
// the appointment being rescheduled, 0 means none.
func CheckConflict(start time.Time, durationMin int, busy []BusyInterval, excludeID uint) error {
	if durationMin < 1 {
		return httperr.ErrBusiness("invalid_duration")
	}

	candidate := NewInterval(start, durationMin)

	for _, b := range busy {
		if excludeID != 0 && b.AppointmentID == excludeID {
			continue
		}
		if !b.Status.Blocks() {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	return nil
}
