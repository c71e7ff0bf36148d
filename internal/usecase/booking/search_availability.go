package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Horizonte de busca: um barbeiro específico mostra a semana do calendário;
// "qualquer barbeiro" olha 60 dias à frente.
const (
	barberLookaheadDays = 7
	anyLookaheadDays    = 60
)

// ======================================================
// INPUT
// ======================================================

type SearchAvailabilityInput struct {
	BarberID  uint // 0 = qualquer barbeiro
	ServiceID uint
	Date      string // opcional; vazio = horizonte padrão
	Today     time.Time
}

// ======================================================
// USE CASE
// ======================================================

type SearchAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewSearchAvailability(
	repo domain.Repository,
	cache *cache.Availability,
) *SearchAvailability {
	return &SearchAvailability{
		repo:  repo,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SearchAvailability) Execute(
	ctx context.Context,
	in SearchAvailabilityInput,
) ([]domain.CandidateWindow, error) {

	// --------------------------------------------------
	// 1️⃣ Serviço define a duração da janela
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if service.DurationMin <= 0 || service.DurationMin%domain.Step != 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 2️⃣ Horizonte de datas
	// --------------------------------------------------
	today := time.Date(
		in.Today.Year(), in.Today.Month(), in.Today.Day(),
		0, 0, 0, 0, in.Today.Location(),
	)

	var fromDay, toDay string
	if in.Date != "" {
		if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		day, _ := time.Parse(domain.DateLayout, in.Date)
		fromDay = in.Date
		toDay = day.AddDate(0, 0, 1).Format(domain.DateLayout)
	} else {
		lookahead := barberLookaheadDays
		if in.BarberID == 0 {
			lookahead = anyLookaheadDays
		}
		fromDay = today.Format(domain.DateLayout)
		toDay = today.AddDate(0, 0, lookahead).Format(domain.DateLayout)
	}

	// --------------------------------------------------
	// 3️⃣ Cache (snapshot consultivo, TTL curto)
	// --------------------------------------------------
	if windows, ok := uc.cache.Get(ctx, in.BarberID, in.ServiceID, in.Date); ok {
		return windows, nil
	}

	// --------------------------------------------------
	// 4️⃣ Motor: slots livres → intervalos → janelas
	// --------------------------------------------------
	slots, err := uc.repo.ListOpenSlots(ctx, in.BarberID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	intervals := domain.GroupAndMerge(slots)

	windows, err := domain.FindWindows(intervals, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ "Qualquer barbeiro": um vencedor por horário
	// --------------------------------------------------
	if in.BarberID == 0 {
		windows = domain.ResolveAnyBarber(windows)
	}

	if windows == nil {
		// lista vazia é resultado válido, não erro
		windows = []domain.CandidateWindow{}
	}

	uc.cache.Set(ctx, in.BarberID, in.ServiceID, in.Date, windows)

	return windows, nil
}
