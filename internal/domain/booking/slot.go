package booking

// ===============================
// Tipos do motor de slots
// ===============================

// OpenSlot é um slot livre vindo do storage, já filtrado
// (customer_id IS NULL). O motor não conhece slots ocupados.
type OpenSlot struct {
	Day       string `json:"day"`
	BarberID  uint   `json:"barber_id"`
	StartTime string `json:"start_time"`
}

// MergedInterval é uma corrida máxima de slots livres contíguos de um
// barbeiro em um dia. Derivado a cada consulta, nunca persistido.
type MergedInterval struct {
	BarberID uint   `json:"barber_id"`
	Date     string `json:"date"`
	From     string `json:"from"`
	To       string `json:"to"` // exclusivo: último slot + Step
}

// CandidateWindow é uma opção de agendamento oferecida ao cliente.
// To - From é sempre igual à duração solicitada.
type CandidateWindow struct {
	BarberID uint   `json:"barber_id"`
	Date     string `json:"date"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func (w CandidateWindow) Width() int {
	return TimeToMinutes(w.To) - TimeToMinutes(w.From)
}
