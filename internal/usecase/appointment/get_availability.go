package appointment

import (
	"context"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/timeutil"
)

type GetAvailability struct {
	repo schedule.Repository
	loc  *time.Location
}

func NewGetAvailability(
	repo schedule.Repository,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc}
}

// Execute lista os horários livres do barbeiro na data (YYYY-MM-DD).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]schedule.Slot, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	date, err := timeutil.ParseDate(dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := uc.repo.ListBusyIntervals(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return schedule.AvailableSlots(schedule.DefaultWindow, date, busy), nil
}
