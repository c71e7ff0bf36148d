package schedule

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute devolve os agendamentos do barbeiro no dia: os slots ocupados
// do dia agrupados em corridas contíguas do mesmo cliente.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]domain.Appointment, error) {

	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	next := day.AddDate(0, 0, 1).Format(domain.DateLayout)

	slots, err := uc.repo.ListSlotsForBarber(ctx, barberID, date, next)
	if err != nil {
		return nil, err
	}

	return domain.GroupBookedSlots(slots), nil
}
