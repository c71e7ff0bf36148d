package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	BarberID   uint
	CustomerID uint
	ServiceID  uint

	Date string
	From string
	To   string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier notify.Notifier
	cache    *cache.Availability
}

func NewBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
	cache *cache.Availability,
) *Book {
	return &Book{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		cache:    cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// A janela candidata devolvida pela busca não é reserva nem lock: o claim
// transacional abaixo revalida a disponibilidade no banco e é a única
// fonte de verdade.
func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*domain.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Serviço e duração da janela
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	width := domain.TimeToMinutes(in.To) - domain.TimeToMinutes(in.From)
	if width != service.DurationMin {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 2️⃣ Um agendamento ativo por cliente por dia
	//     (qualquer barbeiro)
	// --------------------------------------------------
	busy, err := uc.repo.HasBookingOnDay(ctx, in.CustomerID, in.Date)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, httperr.ErrBusiness("one_appointment_per_day")
	}

	// --------------------------------------------------
	// 3️⃣ Claim transacional dos N slots
	// --------------------------------------------------
	ref := uuid.NewString()

	if err := uc.repo.ClaimSlots(ctx, domain.ClaimInput{
		BarberID:   in.BarberID,
		CustomerID: in.CustomerID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		From:       in.From,
		To:         in.To,
		Ref:        ref,
	}); err != nil {
		return nil, err
	}

	uc.cache.Bump(ctx)

	// --------------------------------------------------
	// 4️⃣ Auditoria + notificação (fora da transação)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID: &in.CustomerID,
		Action: "appointment_booked",
		Entity: "appointment_slot",
		Metadata: map[string]any{
			"ref":    ref,
			"barber": in.BarberID,
			"date":   in.Date,
			"from":   in.From,
			"to":     in.To,
		},
	})

	if uc.notifier != nil {
		uc.notifier.BookingConfirmed(notify.BookingInfo{
			Ref:        ref,
			BarberID:   in.BarberID,
			CustomerID: in.CustomerID,
			Date:       in.Date,
			From:       in.From,
			To:         in.To,
		})
	}

	return &domain.Appointment{
		Ref:        ref,
		BarberID:   in.BarberID,
		CustomerID: in.CustomerID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		From:       in.From,
		To:         in.To,
	}, nil
}
