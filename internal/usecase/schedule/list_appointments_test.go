package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestListAppointmentsGroupsBookedRuns(t *testing.T) {
	repo := newFakeRepository()
	repo.addOpenSlot("2024-06-10", 1, "08:00")
	repo.addBookedSlot("2024-06-10", 1, "09:00", "ref-a", 7)
	repo.addBookedSlot("2024-06-10", 1, "09:15", "ref-a", 7)
	repo.addBookedSlot("2024-06-10", 1, "14:00", "ref-b", 8)

	uc := NewListAppointments(repo)

	got, err := uc.Execute(context.Background(), 1, "2024-06-10")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "ref-a", got[0].Ref)
	assert.Equal(t, "09:00", got[0].From)
	assert.Equal(t, "09:30", got[0].To)
	assert.Equal(t, "ref-b", got[1].Ref)
	assert.Equal(t, "14:15", got[1].To)
}

func TestListAppointmentsFiltersByDay(t *testing.T) {
	repo := newFakeRepository()
	repo.addBookedSlot("2024-06-10", 1, "09:00", "ref-a", 7)
	repo.addBookedSlot("2024-06-11", 1, "09:00", "ref-b", 8)

	uc := NewListAppointments(repo)

	got, err := uc.Execute(context.Background(), 1, "2024-06-11")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "ref-b", got[0].Ref)
}

func TestListAppointmentsOtherBarberExcluded(t *testing.T) {
	repo := newFakeRepository()
	repo.addBookedSlot("2024-06-10", 2, "09:00", "ref-a", 7)

	uc := NewListAppointments(repo)

	got, err := uc.Execute(context.Background(), 1, "2024-06-10")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListAppointmentsInvalidDate(t *testing.T) {
	uc := NewListAppointments(newFakeRepository())

	_, err := uc.Execute(context.Background(), 1, "hoje")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
