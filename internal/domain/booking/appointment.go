package booking

import (
	"sort"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Appointment é a visão agregada de um agendamento: a corrida de slots
// ocupados contíguos de um mesmo cliente (mesmo booking_ref).
type Appointment struct {
	Ref        string `json:"ref"`
	BarberID   uint   `json:"barber_id"`
	CustomerID uint   `json:"customer_id"`
	ServiceID  uint   `json:"service_id"`
	Date       string `json:"date"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// GroupBookedSlots reconstrói agendamentos a partir dos slots ocupados.
// Slots com o mesmo booking_ref no mesmo dia formam um agendamento;
// slots livres são ignorados.
func GroupBookedSlots(slots []models.AppointmentSlot) []Appointment {

	type refKey struct {
		Ref string
		Day string
	}

	groups := make(map[refKey][]models.AppointmentSlot)
	for _, s := range slots {
		if !s.IsBooked() || s.BookingRef == "" {
			continue
		}
		key := refKey{Ref: s.BookingRef, Day: s.Day}
		groups[key] = append(groups[key], s)
	}

	result := make([]Appointment, 0, len(groups))

	for key, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return TimeToMinutes(group[i].StartTime) < TimeToMinutes(group[j].StartTime)
		})

		first := group[0]
		last := group[len(group)-1]

		ap := Appointment{
			Ref:        key.Ref,
			BarberID:   first.BarberID,
			CustomerID: *first.CustomerID,
			Date:       key.Day,
			From:       first.StartTime,
			To:         MinutesToTime(TimeToMinutes(last.StartTime) + Step),
		}
		if first.ServiceID != nil {
			ap.ServiceID = *first.ServiceID
		}

		result = append(result, ap)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].From != result[j].From {
			return TimeToMinutes(result[i].From) < TimeToMinutes(result[j].From)
		}
		return result[i].BarberID < result[j].BarberID
	})

	return result
}
