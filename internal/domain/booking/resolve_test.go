package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAnyBarberPicksLowestID(t *testing.T) {
	// dois barbeiros disputando a mesma janela 14:00-14:15
	windows := []CandidateWindow{
		{BarberID: 2, Date: "2024-06-10", From: "14:00", To: "14:15"},
		{BarberID: 1, Date: "2024-06-10", From: "14:00", To: "14:15"},
	}

	resolved := ResolveAnyBarber(windows)

	require.Len(t, resolved, 1)
	assert.Equal(t, uint(1), resolved[0].BarberID)
}

func TestResolveAnyBarberKeepsDistinctWindows(t *testing.T) {
	windows := []CandidateWindow{
		{BarberID: 3, Date: "2024-06-10", From: "09:00", To: "09:30"},
		{BarberID: 1, Date: "2024-06-10", From: "09:15", To: "09:45"},
		{BarberID: 2, Date: "2024-06-11", From: "09:00", To: "09:30"},
	}

	resolved := ResolveAnyBarber(windows)

	// nenhuma colisão de (data, from, to): todas sobrevivem
	require.Len(t, resolved, 3)
	assert.Equal(t, uint(3), resolved[0].BarberID)
	assert.Equal(t, uint(1), resolved[1].BarberID)
	assert.Equal(t, uint(2), resolved[2].BarberID)
}

func TestResolveAnyBarberOrderIndependent(t *testing.T) {
	a := []CandidateWindow{
		{BarberID: 1, Date: "2024-06-10", From: "14:00", To: "14:15"},
		{BarberID: 2, Date: "2024-06-10", From: "14:00", To: "14:15"},
	}
	b := []CandidateWindow{a[1], a[0]}

	assert.Equal(t, ResolveAnyBarber(a), ResolveAnyBarber(b))
}

func TestResolveAnyBarberSortsOutput(t *testing.T) {
	windows := []CandidateWindow{
		{BarberID: 1, Date: "2024-06-11", From: "09:00", To: "09:30"},
		{BarberID: 1, Date: "2024-06-10", From: "10:00", To: "10:30"},
		{BarberID: 1, Date: "2024-06-10", From: "09:00", To: "09:30"},
	}

	resolved := ResolveAnyBarber(windows)

	require.Len(t, resolved, 3)
	assert.Equal(t, "2024-06-10", resolved[0].Date)
	assert.Equal(t, "09:00", resolved[0].From)
	assert.Equal(t, "10:00", resolved[1].From)
	assert.Equal(t, "2024-06-11", resolved[2].Date)
}

func TestResolveAnyBarberEmpty(t *testing.T) {
	resolved := ResolveAnyBarber(nil)
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)
}
