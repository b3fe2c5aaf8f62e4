package appointment

import (
	"context"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	Date      *string
	Status    *string
	BarberID  *uint
	ServiceID *uint
}

func (in UpdateAppointmentInput) reschedules() bool {
	return in.Date != nil || in.BarberID != nil || in.ServiceID != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	duration := ap.Service.DurationMin

	if in.BarberID != nil {
		if _, err := uc.repo.GetBarber(ctx, *in.BarberID); err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		ap.BarberID = *in.BarberID
	}

	if in.ServiceID != nil {
		service, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		ap.ServiceID = service.ID
		duration = service.DurationMin
	}

	if in.Date != nil {
		start, err := parseDateTime(*in.Date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.StartTime = start
	}

	if in.Status != nil {
		status := schedule.Status(*in.Status)
		if !status.Valid() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.Status = string(status)
	}

	if duration < 1 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	ap.EndTime = ap.StartTime.Add(time.Duration(duration) * time.Minute)

	// Remarcação revalida conflitos: mudou data, barbeiro ou serviço e o
	// agendamento continua ocupando agenda.
	if in.reschedules() && schedule.Status(ap.Status).Blocks() {
		err = uc.repo.WithTx(ctx, func(tx schedule.Repository) error {
			busy, err := tx.ListBusyIntervalsForUpdate(
				ctx,
				ap.BarberID,
				ap.StartTime.Add(-conflictWindowPad),
				ap.EndTime.Add(conflictWindowPad),
			)
			if err != nil {
				return err
			}

			if err := schedule.CheckConflict(ap.StartTime, duration, busy, ap.ID); err != nil {
				return err
			}

			return tx.SaveAppointment(ctx, ap)
		})
	} else {
		err = uc.repo.SaveAppointment(ctx, ap)
	}

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.ClientID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
