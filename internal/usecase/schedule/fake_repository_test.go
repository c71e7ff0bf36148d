package schedule

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type slotKey struct {
	Day      string
	BarberID uint
	Time     string
}

// fakeRepository cobre o subconjunto do domain.Repository que os casos de
// uso de agenda exercitam; o resto devolve zero.
type fakeRepository struct {
	slots map[slotKey]*models.AppointmentSlot
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{slots: make(map[slotKey]*models.AppointmentSlot)}
}

func (f *fakeRepository) addOpenSlot(day string, barberID uint, start string) {
	key := slotKey{Day: day, BarberID: barberID, Time: start}
	f.slots[key] = &models.AppointmentSlot{Day: day, BarberID: barberID, StartTime: start}
}

func (f *fakeRepository) addBookedSlot(day string, barberID uint, start, ref string, customerID uint) {
	key := slotKey{Day: day, BarberID: barberID, Time: start}
	f.slots[key] = &models.AppointmentSlot{
		Day:        day,
		BarberID:   barberID,
		StartTime:  start,
		CustomerID: &customerID,
		BookingRef: ref,
	}
}

func (f *fakeRepository) InsertSlots(_ context.Context, barberID uint, pairs []domain.SlotPair) (int, error) {
	inserted := 0
	for _, p := range pairs {
		key := slotKey{Day: p.Date, BarberID: barberID, Time: p.Time}
		if _, exists := f.slots[key]; exists {
			continue
		}
		f.slots[key] = &models.AppointmentSlot{Day: p.Date, BarberID: barberID, StartTime: p.Time}
		inserted++
	}
	return inserted, nil
}

func (f *fakeRepository) DeleteOpenSlots(_ context.Context, barberID uint, pairs []domain.SlotPair) (int, error) {
	removed := 0
	for _, p := range pairs {
		key := slotKey{Day: p.Date, BarberID: barberID, Time: p.Time}
		s, exists := f.slots[key]
		if !exists || s.IsBooked() {
			continue
		}
		delete(f.slots, key)
		removed++
	}
	return removed, nil
}

func (f *fakeRepository) ListSlotsForBarber(_ context.Context, barberID uint, fromDay, toDay string) ([]models.AppointmentSlot, error) {
	var out []models.AppointmentSlot
	for _, s := range f.slots {
		if s.BarberID == barberID && s.Day >= fromDay && s.Day < toDay {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (f *fakeRepository) count() int { return len(f.slots) }

// ---- não exercitados pelos casos de uso de agenda ----

func (f *fakeRepository) ListOpenSlots(context.Context, uint, string, string) ([]domain.OpenSlot, error) {
	return nil, nil
}

func (f *fakeRepository) ListSlotsByRef(context.Context, string) ([]models.AppointmentSlot, error) {
	return nil, nil
}

func (f *fakeRepository) ClaimSlots(context.Context, domain.ClaimInput) error { return nil }

func (f *fakeRepository) HasBookingOnDay(context.Context, uint, string) (bool, error) {
	return false, nil
}

func (f *fakeRepository) ReleaseByRef(context.Context, string, *uint) (int, error) { return 0, nil }

func (f *fakeRepository) ReleaseSlots(context.Context, uint, uint, string, string, string) (int, error) {
	return 0, nil
}

func (f *fakeRepository) GetService(context.Context, uint) (*models.Service, error) {
	return nil, nil
}

func (f *fakeRepository) ListServices(context.Context) ([]models.Service, error) { return nil, nil }

func (f *fakeRepository) ListBarbers(context.Context) ([]models.User, error) { return nil, nil }
