package booking

import "sort"

type bucketKey struct {
	BarberID uint
	Day      string
}

// GroupAndMerge agrupa slots livres por (barbeiro, dia) e funde slots
// consecutivos de Step minutos em intervalos contíguos máximos.
//
// Duplicatas da tripla (day, barber_id, start_time) são descartadas antes
// da ordenação para não criar lacunas falsas. O resultado sai ordenado por
// barbeiro, data e horário para ser determinístico.
func GroupAndMerge(slots []OpenSlot) []MergedInterval {

	// 1. Bucket por (barbeiro, dia), deduplicando pela tripla
	buckets := make(map[bucketKey]map[int]struct{})
	for _, s := range slots {
		key := bucketKey{BarberID: s.BarberID, Day: s.Day}
		if buckets[key] == nil {
			buckets[key] = make(map[int]struct{})
		}
		buckets[key][TimeToMinutes(s.StartTime)] = struct{}{}
	}

	keys := make([]bucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].BarberID != keys[j].BarberID {
			return keys[i].BarberID < keys[j].BarberID
		}
		return keys[i].Day < keys[j].Day
	})

	var result []MergedInterval

	for _, key := range keys {
		minutes := make([]int, 0, len(buckets[key]))
		for m := range buckets[key] {
			minutes = append(minutes, m)
		}
		sort.Ints(minutes)

		// 2. Caminhada única fechando corridas quando aparece lacuna
		intervalStart := -1
		previousStart := -1

		close := func() {
			result = append(result, MergedInterval{
				BarberID: key.BarberID,
				Date:     key.Day,
				From:     MinutesToTime(intervalStart),
				To:       MinutesToTime(previousStart + Step),
			})
		}

		for _, current := range minutes {
			if intervalStart < 0 {
				intervalStart = current
				previousStart = current
				continue
			}

			if current == previousStart+Step {
				// ainda contíguo
				previousStart = current
				continue
			}

			close()
			intervalStart = current
			previousStart = current
		}

		if intervalStart >= 0 {
			close()
		}
	}

	return result
}
