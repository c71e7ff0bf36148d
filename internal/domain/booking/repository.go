package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SlotPair identifica um slot atômico dentro da agenda de um barbeiro.
type SlotPair struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ClaimInput descreve a transação de reserva: N slots consecutivos de
// [From, To) passam de livres para ocupados pelo mesmo cliente.
type ClaimInput struct {
	BarberID   uint
	CustomerID uint
	ServiceID  uint
	Date       string
	From       string
	To         string
	Ref        string
}

type Repository interface {
	// -------- Slots (leitura) --------
	ListOpenSlots(
		ctx context.Context,
		barberID uint, // 0 = todos os barbeiros
		fromDay string,
		toDay string, // exclusivo
	) ([]OpenSlot, error)

	ListSlotsForBarber(
		ctx context.Context,
		barberID uint,
		fromDay string,
		toDay string,
	) ([]models.AppointmentSlot, error)

	ListSlotsByRef(
		ctx context.Context,
		ref string,
	) ([]models.AppointmentSlot, error)

	// -------- Slots (mutação) --------
	InsertSlots(
		ctx context.Context,
		barberID uint,
		pairs []SlotPair,
	) (int, error)

	DeleteOpenSlots(
		ctx context.Context,
		barberID uint,
		pairs []SlotPair,
	) (int, error)

	// -------- Reserva --------
	ClaimSlots(
		ctx context.Context,
		in ClaimInput,
	) error

	HasBookingOnDay(
		ctx context.Context,
		customerID uint,
		day string,
	) (bool, error)

	ReleaseByRef(
		ctx context.Context,
		ref string,
		customerID *uint, // nil = sem checagem de dono (token é a prova)
	) (int, error)

	ReleaseSlots(
		ctx context.Context,
		barberID uint,
		customerID uint,
		day string,
		from string,
		to string,
	) (int, error)

	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.User, error)
}
