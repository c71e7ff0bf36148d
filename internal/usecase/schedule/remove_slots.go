package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type RemoveSlotsResult struct {
	Requested int `json:"requested"`
	Removed   int `json:"removed"`
}

type RemoveSlots struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewRemoveSlots(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *RemoveSlots {
	return &RemoveSlots{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Slot ocupado não pode ser removido: o DELETE guardado simplesmente não
// o afeta e Removed sai menor que Requested. A UI mostra isso como aviso,
// não como falha.
func (uc *RemoveSlots) Execute(
	ctx context.Context,
	barberID uint,
	pairs []domain.SlotPair,
) (*RemoveSlotsResult, error) {

	removed, err := uc.repo.DeleteOpenSlots(ctx, barberID, pairs)
	if err != nil {
		return nil, err
	}

	if removed > 0 {
		uc.cache.Bump(ctx)

		uc.audit.Dispatch(audit.Event{
			UserID: &barberID,
			Action: "slots_removed",
			Entity: "appointment_slot",
			Metadata: map[string]any{
				"requested": len(pairs),
				"removed":   removed,
			},
		})
	}

	return &RemoveSlotsResult{
		Requested: len(pairs),
		Removed:   removed,
	}, nil
}
