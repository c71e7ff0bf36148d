package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// ======================================================
// RESULT
// ======================================================

type AddSlotsResult struct {
	Requested int `json:"requested"`
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"` // fora da grade ou data inválida
}

// ======================================================
// USE CASE
// ======================================================

type AddSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewAddSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *AddSlots {
	return &AddSlots{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddSlots) Execute(
	ctx context.Context,
	barberID uint,
	pairs []domain.SlotPair,
) (*AddSlotsResult, error) {

	result := &AddSlotsResult{Requested: len(pairs)}

	// fora da grade de 15 min é ignorado, nunca inserido
	valid := make([]domain.SlotPair, 0, len(pairs))
	for _, p := range pairs {
		if _, err := time.Parse(domain.DateLayout, p.Date); err != nil {
			result.Skipped++
			continue
		}
		if !domain.IsOnGrid(p.Time) {
			result.Skipped++
			continue
		}
		valid = append(valid, p)
	}

	inserted, err := uc.repo.InsertSlots(ctx, barberID, valid)
	if err != nil {
		return nil, err
	}
	result.Inserted = inserted

	if inserted > 0 {
		uc.cache.Bump(ctx)

		uc.audit.Dispatch(audit.Event{
			UserID: &barberID,
			Action: "slots_added",
			Entity: "appointment_slot",
			Metadata: map[string]any{
				"requested": result.Requested,
				"inserted":  inserted,
			},
		})
	}

	return result, nil
}
