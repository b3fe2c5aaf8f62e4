package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day() time.Time {
	return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
}

func TestAvailableSlots_EmptyDay(t *testing.T) {
	slots := AvailableSlots(DefaultWindow, day(), nil)

	assert.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].FormattedTime)
	assert.Equal(t, "17:30", slots[17].FormattedTime)

	// espaçamento de 30 min, ordem crescente
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].Time.Sub(slots[i-1].Time))
	}
}

func TestAvailableSlots_LongAppointmentBlocksEverySlotItTouches(t *testing.T) {
	busy := []BusyInterval{confirmedAt(1, 9, 0, 60)}

	slots := AvailableSlots(DefaultWindow, day(), busy)

	assert.Len(t, slots, 16)
	assert.Equal(t, "10:00", slots[0].FormattedTime)
	for _, s := range slots {
		assert.NotEqual(t, "09:00", s.FormattedTime)
		assert.NotEqual(t, "09:30", s.FormattedTime)
	}
}

func TestAvailableSlots_AppointmentStartingMidSlot(t *testing.T) {
	// 10:15–10:45 toca os slots 10:00 e 10:30
	busy := []BusyInterval{confirmedAt(1, 10, 15, 30)}

	slots := AvailableSlots(DefaultWindow, day(), busy)

	assert.Len(t, slots, 16)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.FormattedTime)
		assert.NotEqual(t, "10:30", s.FormattedTime)
	}
}

func TestAvailableSlots_CancelledAppointmentFreesTheSlot(t *testing.T) {
	busy := []BusyInterval{
		{AppointmentID: 1, Start: at(9, 0), End: at(10, 0), Status: StatusCancelled},
	}

	slots := AvailableSlots(DefaultWindow, day(), busy)
	assert.Len(t, slots, 18)
}

func TestAvailableSlots_FullyBookedDay(t *testing.T) {
	busy := []BusyInterval{confirmedAt(1, 9, 0, 9*60)}

	slots := AvailableSlots(DefaultWindow, day(), busy)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestAvailableSlots_MisconfiguredWindow(t *testing.T) {
	inverted := WorkingWindow{StartHour: 18, EndHour: 9, SlotMinutes: 30}
	assert.Empty(t, AvailableSlots(inverted, day(), nil))

	degenerate := WorkingWindow{StartHour: 9, EndHour: 9, SlotMinutes: 30}
	assert.Empty(t, AvailableSlots(degenerate, day(), nil))

	zeroStep := WorkingWindow{StartHour: 9, EndHour: 18, SlotMinutes: 0}
	assert.Empty(t, AvailableSlots(zeroStep, day(), nil))
}

func TestAvailableSlots_Deterministic(t *testing.T) {
	busy := []BusyInterval{
		confirmedAt(1, 9, 0, 60),
		confirmedAt(2, 13, 30, 45),
		{AppointmentID: 3, Start: at(16, 0), End: at(16, 30), Status: StatusCancelled},
	}

	first := AvailableSlots(DefaultWindow, day(), busy)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AvailableSlots(DefaultWindow, day(), busy))
	}
}

func TestAvailableSlots_KeepsDateLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, loc)

	slots := AvailableSlots(DefaultWindow, date, nil)

	assert.Len(t, slots, 18)
	assert.Equal(t, loc, slots[0].Time.Location())
	assert.Equal(t, 9, slots[0].Time.Hour())
}
