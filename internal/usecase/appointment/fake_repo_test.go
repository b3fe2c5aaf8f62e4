package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/sharpcutlabs/barbershop-api/internal/domain/schedule"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

// fakeRepo mantém tudo em memória para exercitar os use cases sem banco.
type fakeRepo struct {
	users        map[uint]*models.User
	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment
	nextID       uint
}

var _ schedule.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		users:        map[uint]*models.User{},
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
	}

	r.users[1] = &models.User{ID: 1, Name: "Ana", Email: "ana@example.com", Role: models.RoleClient}
	r.barbers[1] = &models.Barber{ID: 1, Name: "Carlos"}
	r.barbers[2] = &models.Barber{ID: 2, Name: "Pedro"}
	r.services[1] = &models.Service{ID: 1, Name: "Corte", Price: 50, DurationMin: 30}
	r.services[2] = &models.Service{ID: 2, Name: "Corte + Barba", Price: 90, DurationMin: 60}

	return r
}

// addAppointment pré-popula a agenda direto no mapa.
func (r *fakeRepo) addAppointment(barberID uint, start time.Time, durMin int, status schedule.Status) *models.Appointment {
	r.nextID++
	ap := &models.Appointment{
		ID:        r.nextID,
		Reference: fmt.Sprintf("ref-%d", r.nextID),
		ClientID:  1,
		BarberID:  barberID,
		ServiceID: 1,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durMin) * time.Minute),
		Status:    string(status),
	}
	r.appointments[ap.ID] = ap
	return ap
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d not found", id)
	}
	return u, nil
}

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, fmt.Errorf("barber %d not found", id)
	}
	return b, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %d not found", id)
	}
	return s, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %d not found", id)
	}

	out := *ap
	if u, ok := r.users[out.ClientID]; ok {
		out.Client = *u
	}
	if b, ok := r.barbers[out.BarberID]; ok {
		out.Barber = *b
	}
	if s, ok := r.services[out.ServiceID]; ok {
		out.Service = *s
	}
	return &out, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID

	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return fmt.Errorf("appointment %d not found", ap.ID)
	}

	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return fmt.Errorf("appointment %d not found", id)
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListBusyIntervals(
	_ context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]schedule.BusyInterval, error) {

	out := []schedule.BusyInterval{}
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !ap.StartTime.Before(to) || !ap.EndTime.After(from) {
			continue
		}
		out = append(out, schedule.BusyInterval{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           ap.EndTime,
			Status:        schedule.Status(ap.Status),
		})
	}
	return out, nil
}

func (r *fakeRepo) ListBusyIntervalsForUpdate(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]schedule.BusyInterval, error) {
	return r.ListBusyIntervals(ctx, barberID, from, to)
}

func (r *fakeRepo) WithTx(_ context.Context, fn func(schedule.Repository) error) error {
	return fn(r)
}
