package appointment

import (
	"context"

	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

type GetAppointments struct {
	repo schedule.Repository
}

func NewGetAppointments(repo schedule.Repository) *GetAppointments {
	return &GetAppointments{repo: repo}
}

func (uc *GetAppointments) One(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (uc *GetAppointments) List(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
