package schedule

import "time"

// Interval é o intervalo meio-aberto [Start, End) de um atendimento.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, durationMin int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMin) * time.Minute),
	}
}

// Overlaps reports whether the two half-open intervals share any instant.
// Strict inequalities: back-to-back appointments do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Slot é um horário de 30 minutos oferecido ao cliente.
type Slot struct {
	Time          time.Time `json:"time"`
	FormattedTime string    `json:"formattedTime"`
}

// BusyInterval is an existing appointment as seen by the scheduling core:
// its interval comes from the linked service's duration, already resolved.
type BusyInterval struct {
	AppointmentID uint
	Start         time.Time
	End           time.Time
	Status        Status
}

func (b BusyInterval) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}
