package schedule

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type BulkGenerateInput struct {
	StartDate  string
	DaysOfWeek []int // 0 = domingo .. 6 = sábado
	WeekCount  int
	FromTime   string
	ToTime     string // exclusivo
}

// ======================================================
// USE CASE
// ======================================================

type BulkGenerate struct {
	add *AddSlots
}

func NewBulkGenerate(add *AddSlots) *BulkGenerate {
	return &BulkGenerate{add: add}
}

// ExpandPattern expande o padrão semanal em pares {data, hora} concretos:
// para cada dia marcado dentro de WeekCount semanas a partir de StartDate,
// todos os horários de [FromTime, ToTime) na grade de 15 min.
func ExpandPattern(in BulkGenerateInput) ([]domain.SlotPair, error) {

	start, err := time.Parse(domain.DateLayout, in.StartDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if in.WeekCount < 1 || in.WeekCount > 12 {
		return nil, httperr.ErrBusiness("invalid_week_count")
	}

	if len(in.DaysOfWeek) == 0 {
		return nil, httperr.ErrBusiness("no_days_selected")
	}

	selected := make(map[int]bool, len(in.DaysOfWeek))
	for _, d := range in.DaysOfWeek {
		if d < 0 || d > 6 {
			return nil, httperr.ErrBusiness("invalid_weekday")
		}
		selected[d] = true
	}

	fromMin := domain.TimeToMinutes(in.FromTime)
	toMin := domain.TimeToMinutes(in.ToTime)

	if in.FromTime == "" || in.ToTime == "" || toMin <= fromMin {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}
	if !domain.IsOnGrid(in.FromTime) || !domain.IsOnGrid(in.ToTime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	times := make([]string, 0, (toMin-fromMin)/domain.Step)
	for m := fromMin; m < toMin; m += domain.Step {
		times = append(times, domain.MinutesToTime(m))
	}

	var pairs []domain.SlotPair

	for offset := 0; offset < in.WeekCount*7; offset++ {
		day := start.AddDate(0, 0, offset)
		if !selected[int(day.Weekday())] {
			continue
		}

		date := day.Format(domain.DateLayout)
		for _, t := range times {
			pairs = append(pairs, domain.SlotPair{Date: date, Time: t})
		}
	}

	return pairs, nil
}

func (uc *BulkGenerate) Execute(
	ctx context.Context,
	barberID uint,
	in BulkGenerateInput,
) (*AddSlotsResult, error) {

	pairs, err := ExpandPattern(in)
	if err != nil {
		return nil, err
	}

	return uc.add.Execute(ctx, barberID, pairs)
}
