package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Step é a granularidade fixa da grade de slots, em minutos.
// Todo o motor (merge, busca, claim) assume slots alinhados a essa grade.
const Step = 15

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// TimeToMinutes converte "HH:MM" ou "HH:MM:SS" em minutos desde meia-noite.
// Entrada vazia retorna 0 (comportamento permissivo, não é erro).
func TimeToMinutes(t string) int {
	if t == "" {
		return 0
	}

	parts := strings.Split(t, ":")
	h, _ := strconv.Atoi(parts[0])

	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}

	return h*60 + m
}

// MinutesToTime é o inverso: sempre "HH:MM" com zero à esquerda.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekDates retorna os 7 dias consecutivos a partir de start (hora zerada).
func WeekDates(start time.Time) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}

// GenerateTimeSlots produz a grade canônica de horários, ex.: 09:00..18:45
// com passo de 15 minutos. endHour é exclusivo.
func GenerateTimeSlots(startHour, endHour, stepMinutes int) []string {
	var slots []string
	for m := startHour * 60; m < endHour*60; m += stepMinutes {
		slots = append(slots, MinutesToTime(m))
	}
	return slots
}

// IsOnGrid verifica se um horário cai exatamente na grade de Step minutos.
func IsOnGrid(t string) bool {
	return t != "" && TimeToMinutes(t)%Step == 0
}

// ExpandWindow expande a janela [from, to) nos horários atômicos que a
// compõem. Janela desalinhada à grade é rejeitada.
func ExpandWindow(from, to string) ([]string, error) {
	fromMin := TimeToMinutes(from)
	toMin := TimeToMinutes(to)

	if from == "" || to == "" || toMin <= fromMin || (toMin-fromMin)%Step != 0 || fromMin%Step != 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	times := make([]string, 0, (toMin-fromMin)/Step)
	for m := fromMin; m < toMin; m += Step {
		times = append(times, MinutesToTime(m))
	}
	return times, nil
}
