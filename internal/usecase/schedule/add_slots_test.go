package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

func TestAddSlotsInsertsValidPairs(t *testing.T) {
	repo := newFakeRepository()
	uc := NewAddSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
		{Date: "2024-06-10", Time: "09:15"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Requested)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 2, repo.count())
}

func TestAddSlotsIdempotent(t *testing.T) {
	repo := newFakeRepository()
	uc := NewAddSlots(repo, nil, nil)

	pairs := []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
		{Date: "2024-06-10", Time: "09:15"},
	}

	_, err := uc.Execute(context.Background(), 1, pairs)
	require.NoError(t, err)

	// repetir os mesmos pares não duplica nem falha
	result, err := uc.Execute(context.Background(), 1, pairs)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 2, repo.count())
}

func TestAddSlotsSkipsOffGrid(t *testing.T) {
	repo := newFakeRepository()
	uc := NewAddSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, []domain.SlotPair{
		{Date: "2024-06-10", Time: "09:00"},
		{Date: "2024-06-10", Time: "09:10"}, // fora da grade de 15 min
		{Date: "10/06/2024", Time: "09:30"}, // data inválida
		{Date: "2024-06-10", Time: ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Requested)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 3, result.Skipped)
}

func TestAddSlotsPerBarber(t *testing.T) {
	repo := newFakeRepository()
	uc := NewAddSlots(repo, nil, nil)

	pair := []domain.SlotPair{{Date: "2024-06-10", Time: "09:00"}}

	// o mesmo horário para dois barbeiros são slots distintos
	r1, err := uc.Execute(context.Background(), 1, pair)
	require.NoError(t, err)
	r2, err := uc.Execute(context.Background(), 2, pair)
	require.NoError(t, err)

	assert.Equal(t, 1, r1.Inserted)
	assert.Equal(t, 1, r2.Inserted)
	assert.Equal(t, 2, repo.count())
}

func TestAddSlotsEmptyInput(t *testing.T) {
	repo := newFakeRepository()
	uc := NewAddSlots(repo, nil, nil)

	result, err := uc.Execute(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Requested)
	assert.Equal(t, 0, result.Inserted)
}
