package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

func TestRemoveSlotsDeletesOpen(t *testing.T) {
	repo := newFakeRepository()
	repo.addOpenSlot("2024-06-10", 1, "09:00")
	repo.addOpenSlot("2024-06-10", 1, "09:15")

	uc := NewRemoveSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
		{Date: "2024-06-10", Time: "09:15"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 2, result.Removed)
	assert.Equal(t, 0, repo.count())
}

func TestRemoveSlotsSkipsBooked(t *testing.T) {
	repo := newFakeRepository()
	repo.addOpenSlot("2024-06-10", 1, "09:00")
	repo.addBookedSlot("2024-06-10", 1, "09:15", "ref-a", 7)

	uc := NewRemoveSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
		{Date: "2024-06-10", Time: "09:15"},
	})
	require.NoError(t, err)

	// o slot ocupado sobrevive: Removed < Requested, sem erro
	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, 1, repo.count())
}

func TestRemoveSlotsMissingPairs(t *testing.T) {
	repo := newFakeRepository()
	uc := NewRemoveSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Removed)
}

func TestRemoveSlotsOtherBarberUntouched(t *testing.T) {
	repo := newFakeRepository()
	repo.addOpenSlot("2024-06-10", 2, "09:00")

	uc := NewRemoveSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Removed)
	assert.Equal(t, 1, repo.count())
}
