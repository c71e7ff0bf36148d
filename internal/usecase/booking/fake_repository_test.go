package booking

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type slotKey struct {
	Day      string
	BarberID uint
	Time     string
}

// fakeRepository é um domain.Repository em memória para os testes de caso
// de uso. Reproduz as mesmas regras do repositório gorm: insert idempotente,
// delete guardado e claim tudo-ou-nada.
type fakeRepository struct {
	slots    map[slotKey]*models.AppointmentSlot
	services map[uint]*models.Service
	barbers  []models.User
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		slots:    make(map[slotKey]*models.AppointmentSlot),
		services: make(map[uint]*models.Service),
	}
}

func (f *fakeRepository) addService(id uint, name string, durationMin int) {
	f.services[id] = &models.Service{Name: name, DurationMin: durationMin}
	f.services[id].ID = id
}

func (f *fakeRepository) addOpenSlot(day string, barberID uint, start string) {
	key := slotKey{Day: day, BarberID: barberID, Time: start}
	f.slots[key] = &models.AppointmentSlot{
		Day:       day,
		BarberID:  barberID,
		StartTime: start,
	}
}

func (f *fakeRepository) addBookedSlot(day string, barberID uint, start, ref string, customerID, serviceID uint) {
	key := slotKey{Day: day, BarberID: barberID, Time: start}
	f.slots[key] = &models.AppointmentSlot{
		Day:        day,
		BarberID:   barberID,
		StartTime:  start,
		CustomerID: &customerID,
		ServiceID:  &serviceID,
		BookingRef: ref,
	}
}

func (f *fakeRepository) sortedKeys() []slotKey {
	keys := make([]slotKey, 0, len(f.slots))
	for k := range f.slots {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Day != keys[j].Day {
			return keys[i].Day < keys[j].Day
		}
		if keys[i].BarberID != keys[j].BarberID {
			return keys[i].BarberID < keys[j].BarberID
		}
		return keys[i].Time < keys[j].Time
	})
	return keys
}

// -------- Slots (leitura) --------

func (f *fakeRepository) ListOpenSlots(_ context.Context, barberID uint, fromDay, toDay string) ([]domain.OpenSlot, error) {
	var out []domain.OpenSlot
	for _, k := range f.sortedKeys() {
		s := f.slots[k]
		if s.IsBooked() {
			continue
		}
		if barberID != 0 && s.BarberID != barberID {
			continue
		}
		if s.Day < fromDay || s.Day >= toDay {
			continue
		}
		out = append(out, domain.OpenSlot{
			Day:       s.Day,
			BarberID:  s.BarberID,
			StartTime: s.StartTime,
		})
	}
	return out, nil
}

func (f *fakeRepository) ListSlotsForBarber(_ context.Context, barberID uint, fromDay, toDay string) ([]models.AppointmentSlot, error) {
	var out []models.AppointmentSlot
	for _, k := range f.sortedKeys() {
		s := f.slots[k]
		if s.BarberID != barberID || s.Day < fromDay || s.Day >= toDay {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepository) ListSlotsByRef(_ context.Context, ref string) ([]models.AppointmentSlot, error) {
	var out []models.AppointmentSlot
	for _, k := range f.sortedKeys() {
		if f.slots[k].BookingRef == ref {
			out = append(out, *f.slots[k])
		}
	}
	return out, nil
}

// -------- Slots (mutação) --------

func (f *fakeRepository) InsertSlots(_ context.Context, barberID uint, pairs []domain.SlotPair) (int, error) {
	inserted := 0
	for _, p := range pairs {
		key := slotKey{Day: p.Date, BarberID: barberID, Time: p.Time}
		if _, exists := f.slots[key]; exists {
			continue
		}
		f.slots[key] = &models.AppointmentSlot{
			Day:       p.Date,
			BarberID:  barberID,
			StartTime: p.Time,
		}
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

// -------- Reserva --------

func (f *fakeRepository) ClaimSlots(_ context.Context, in domain.ClaimInput) error {
	times, err := domain.ExpandWindow(in.From, in.To)
	if err != nil {
		return err
	}

	// valida tudo antes de escrever: todo-ou-nada, como a transação real
	for _, tm := range times {
		key := slotKey{Day: in.Date, BarberID: in.BarberID, Time: tm}
		s, exists := f.slots[key]
		if !exists || s.IsBooked() {
			return httperr.ErrBusiness("already_booked")
		}
	}

	for _, tm := range times {
		key := slotKey{Day: in.Date, BarberID: in.BarberID, Time: tm}
		customerID := in.CustomerID
		serviceID := in.ServiceID
		f.slots[key].CustomerID = &customerID
		f.slots[key].ServiceID = &serviceID
		f.slots[key].BookingRef = in.Ref
	}
	return nil
}

func (f *fakeRepository) HasBookingOnDay(_ context.Context, customerID uint, day string) (bool, error) {
	for _, s := range f.slots {
		if s.Day == day && s.CustomerID != nil && *s.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) ReleaseByRef(_ context.Context, ref string, customerID *uint) (int, error) {
	released := 0
	for _, s := range f.slots {
		if s.BookingRef != ref {
			continue
		}
		if customerID != nil && (s.CustomerID == nil || *s.CustomerID != *customerID) {
			continue
		}
		s.CustomerID = nil
		s.ServiceID = nil
		s.BookingRef = ""
		released++
	}
	return released, nil
}

func (f *fakeRepository) ReleaseSlots(_ context.Context, barberID, customerID uint, day, from, to string) (int, error) {
	times, err := domain.ExpandWindow(from, to)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, tm := range times {
		key := slotKey{Day: day, BarberID: barberID, Time: tm}
		s, exists := f.slots[key]
		if !exists || s.CustomerID == nil || *s.CustomerID != customerID {
			continue
		}
		s.CustomerID = nil
		s.ServiceID = nil
		s.BookingRef = ""
		released++
	}
	return released, nil
}

// -------- Catálogo --------

func (f *fakeRepository) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return s, nil
}

func (f *fakeRepository) ListServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DurationMin < out[j].DurationMin })
	return out, nil
}

func (f *fakeRepository) ListBarbers(_ context.Context) ([]models.User, error) {
	return f.barbers, nil
}

func (f *fakeRepository) openCount(day string, barberID uint) int {
	n := 0
	for _, s := range f.slots {
		if s.Day == day && s.BarberID == barberID && !s.IsBooked() {
			n++
		}
	}
	return n
}
