package models

import "time"

// AppointmentSlot é a unidade atômica de agenda (15 minutos).
// A tripla (day, barber_id, start_time) é única; customer_id nulo
// significa slot livre.
type AppointmentSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Day      string `gorm:"size:10;not null;uniqueIndex:idx_slot_key,priority:1" json:"day"`
	BarberID uint   `gorm:"not null;uniqueIndex:idx_slot_key,priority:2" json:"barber_id"`
	Barber   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime string `gorm:"size:5;not null;uniqueIndex:idx_slot_key,priority:3" json:"start_time"`

	CustomerID *uint `json:"customer_id"`
	ServiceID  *uint `json:"service_id"`

	// Mesmo valor em todos os slots de um agendamento; também é o
	// token de cancelamento enviado ao cliente.
	BookingRef string `gorm:"size:36;index" json:"booking_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AppointmentSlot) IsBooked() bool {
	return s.CustomerID != nil
}
