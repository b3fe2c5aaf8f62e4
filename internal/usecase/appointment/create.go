package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// conflictWindowPad: margem de busca maior que qualquer duração de serviço.
const conflictWindowPad = 12 * time.Hour

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Date      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetUser(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start, err := parseDateTime(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if service.DurationMin < 1 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		ClientID:  client.ID,
		BarberID:  barber.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(schedule.InitialStatus()),
	}

	// Checagem de conflito e insert na mesma transação, com as linhas do
	// barbeiro travadas até o commit.
	err = uc.repo.WithTx(ctx, func(tx schedule.Repository) error {
		busy, err := tx.ListBusyIntervalsForUpdate(
			ctx,
			barber.ID,
			start.Add(-conflictWindowPad),
			end.Add(conflictWindowPad),
		)
		if err != nil {
			return err
		}

		if err := schedule.CheckConflict(start, service.DurationMin, busy, 0); err != nil {
			return err
		}

		return tx.CreateAppointment(ctx, ap)
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			// o banco barrou uma corrida que passou pela checagem
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

// parseDateTime aceita RFC3339 ou "YYYY-MM-DD HH:mm" no fuso da barbearia.
func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", raw, loc)
}
