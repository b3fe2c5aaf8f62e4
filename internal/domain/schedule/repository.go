package schedule

import (
	"context"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetUser(ctx context.Context, id uint) (*models.User, error)

	GetBarber(ctx context.Context, id uint) (*models.Barber, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Appointment --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	SaveAppointment(ctx context.Context, ap *models.Appointment) error

	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Scheduling --------
	// ListBusyIntervals returns the barber's appointments whose intervals
	// touch [from, to), every status included; the caller decides what blocks.
	ListBusyIntervals(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]BusyInterval, error)

	// ListBusyIntervalsForUpdate is ListBusyIntervals with the rows locked
	// until the surrounding transaction commits.
	ListBusyIntervalsForUpdate(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]BusyInterval, error)

	// WithTx runs fn against a repository bound to a single transaction.
	WithTx(ctx context.Context, fn func(Repository) error) error
}
