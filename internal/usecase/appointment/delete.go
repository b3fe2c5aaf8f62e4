package appointment

import (
	"context"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o agendamento definitivamente (hard delete).
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.ClientID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
