package booking

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// FindWindows desliza uma janela de durationMinutes sobre cada intervalo,
// em passos de Step, e emite toda posição de início válida. Um intervalo
// maior que a duração produz múltiplas janelas sobrepostas — o cliente
// escolhe exatamente uma.
//
// A duração precisa ser um múltiplo positivo de Step.
func FindWindows(intervals []MergedInterval, durationMinutes int) ([]CandidateWindow, error) {
	if durationMinutes <= 0 || durationMinutes%Step != 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	var windows []CandidateWindow

	for _, iv := range intervals {
		fromMin := TimeToMinutes(iv.From)
		toMin := TimeToMinutes(iv.To)

		if toMin-fromMin < durationMinutes {
			continue
		}

		for start := fromMin; start+durationMinutes <= toMin; start += Step {
			windows = append(windows, CandidateWindow{
				BarberID: iv.BarberID,
				Date:     iv.Date,
				From:     MinutesToTime(start),
				To:       MinutesToTime(start + durationMinutes),
			})
		}
	}

	return windows, nil
}
