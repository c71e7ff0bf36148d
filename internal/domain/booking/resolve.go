package booking

import "sort"

type windowKey struct {
	Date string
	From string
	To   string
}

// ResolveAnyBarber resolve o modo "qualquer barbeiro": quando mais de um
// barbeiro pode atender o mesmo (data, from, to), vence o de menor ID.
//
// O desempate pelo menor ID é política explícita: o objetivo é ser
// determinístico para o chamador, não balancear carga entre barbeiros.
func ResolveAnyBarber(windows []CandidateWindow) []CandidateWindow {

	groups := make(map[windowKey]CandidateWindow)

	for _, w := range windows {
		key := windowKey{Date: w.Date, From: w.From, To: w.To}

		current, ok := groups[key]
		if !ok || w.BarberID < current.BarberID {
			groups[key] = w
		}
	}

	result := make([]CandidateWindow, 0, len(groups))
	for _, w := range groups {
		result = append(result, w)
	}

	// ordem estável: data, horário, barbeiro
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].From != result[j].From {
			return TimeToMinutes(result[i].From) < TimeToMinutes(result[j].From)
		}
		return result[i].BarberID < result[j].BarberID
	})

	return result
}
