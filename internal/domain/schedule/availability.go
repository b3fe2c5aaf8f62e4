package schedule

import "time"

// WorkingWindow define o expediente fixo da barbearia.
type WorkingWindow struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

// DefaultWindow: 09:00–18:00 em blocos de 30 minutos (18 slots por dia).
var DefaultWindow = WorkingWindow{
	StartHour:   9,
	EndHour:     18,
	SlotMinutes: 30,
}

// AvailableSlots lista os horários livres do barbeiro no dia informado, em
// ordem crescente. Um slot está livre quando sua janela meio-aberta não
// sobrepõe nenhum agendamento que ocupa agenda; atendimentos mais longos que
// um slot bloqueiam todos os slots que tocam.
func AvailableSlots(w WorkingWindow, date time.Time, busy []BusyInterval) []Slot {
	slots := []Slot{}

	if w.StartHour >= w.EndHour || w.SlotMinutes <= 0 {
		return slots
	}

	loc := date.Location()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), w.StartHour, 0, 0, 0, loc)
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), w.EndHour, 0, 0, 0, loc)
	step := time.Duration(w.SlotMinutes) * time.Minute

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(step) {
		slot := Interval{Start: cur, End: cur.Add(step)}

		blocked := false
		for _, b := range busy {
			if !b.Status.Blocks() {
				continue
			}
			if slot.Overlaps(b.Interval()) {
				blocked = true
				break
			}
		}

		if !blocked {
			slots = append(slots, Slot{
				Time:          cur,
				FormattedTime: cur.Format("15:04"),
			})
		}
	}

	return slots
}
