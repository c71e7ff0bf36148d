package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CancelInput struct {
	Ref string

	// Guardas de dono, aplicadas quando presentes. O cancelamento por
	// link de e-mail não traz nenhuma: o ref é a prova.
	CustomerID *uint
	BarberID   *uint
}

// ======================================================
// USE CASE
// ======================================================

type Cancel struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
	cache    *cache.Availability
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
	cache *cache.Availability,
) *Cancel {
	return &Cancel{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		cache:    cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Cancelar devolve os slots ao estado livre (booked → open). Slot ocupado
// nunca é apagado: remover da agenda exige cancelar antes.
func (uc *Cancel) Execute(
	ctx context.Context,
	in CancelInput,
) (int, error) {

	slots, err := uc.repo.ListSlotsByRef(ctx, in.Ref)
	if err != nil {
		return 0, err
	}
	if len(slots) == 0 {
		return 0, httperr.ErrBusiness("booking_not_found")
	}

	appointments := domain.GroupBookedSlots(slots)
	if len(appointments) == 0 {
		return 0, httperr.ErrBusiness("booking_not_found")
	}
	ap := appointments[0]

	if in.BarberID != nil && ap.BarberID != *in.BarberID {
		return 0, httperr.ErrBusiness("unauthorized")
	}

	// Barbeiro libera pela janela do agendamento (clear guardado por
	// cliente, só os slots de [From, To)); os fluxos do cliente e do
	// link de e-mail liberam pelo ref.
	var released int
	if in.BarberID != nil {
		released, err = uc.repo.ReleaseSlots(ctx, ap.BarberID, ap.CustomerID, ap.Date, ap.From, ap.To)
	} else {
		released, err = uc.repo.ReleaseByRef(ctx, in.Ref, in.CustomerID)
	}
	if err != nil {
		return 0, err
	}
	if released == 0 {
		return 0, httperr.ErrBusiness("booking_not_found")
	}

	uc.cache.Bump(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID: in.CustomerID,
		Action: "appointment_cancelled",
		Entity: "appointment_slot",
		Metadata: map[string]any{
			"ref":      in.Ref,
			"released": released,
		},
	})

	if uc.notifier != nil {
		uc.notifier.BookingCancelled(notify.BookingInfo{
			Ref:        ap.Ref,
			BarberID:   ap.BarberID,
			CustomerID: ap.CustomerID,
			Date:       ap.Date,
			From:       ap.From,
			To:         ap.To,
		})
	}

	return released, nil
}
