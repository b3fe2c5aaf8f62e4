package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

// SaveAppointment grava somente a linha do agendamento. Sem o Omit, o GORM
// salvaria antes as associações pré-carregadas (Client/Barber/Service) e
// sobrescreveria as foreign keys recém-alteradas com os IDs antigos.
func (r *ScheduleGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Scheduling
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBusyIntervals(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]schedule.BusyInterval, error) {
	return r.listBusyIntervals(ctx, barberID, from, to, false)
}

func (r *ScheduleGormRepository) ListBusyIntervalsForUpdate(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]schedule.BusyInterval, error) {
	return r.listBusyIntervals(ctx, barberID, from, to, true)
}

func (r *ScheduleGormRepository) listBusyIntervals(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
	locked bool,
) ([]schedule.BusyInterval, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND start_time < ? AND end_time > ?",
			barberID, to, from,
		).
		Order("start_time ASC")

	if locked {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}

	busy := make([]schedule.BusyInterval, 0, len(aps))
	for _, ap := range aps {
		busy = append(busy, schedule.BusyInterval{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           ap.EndTime,
			Status:        schedule.Status(ap.Status),
		})
	}

	return busy, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ScheduleGormRepository) WithTx(
	ctx context.Context,
	fn func(schedule.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
