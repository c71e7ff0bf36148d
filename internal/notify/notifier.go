package notify

import "log"

// BookingInfo é o que a camada de notificação recebe depois que a
// transação de reserva foi confirmada (ou desfeita).
type BookingInfo struct {
	Ref        string
	BarberID   uint
	CustomerID uint
	Date       string
	From       string
	To         string
}

// Notifier é o colaborador externo de e-mails. O core só conhece esta
// interface; o envio real fica fora deste serviço.
type Notifier interface {
	BookingConfirmed(info BookingInfo)
	BookingCancelled(info BookingInfo)
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingConfirmed(info BookingInfo) {
	log.Printf("booking confirmed ref=%s barber=%d customer=%d %s %s-%s",
		info.Ref, info.BarberID, info.CustomerID, info.Date, info.From, info.To)
}

func (n *LogNotifier) BookingCancelled(info BookingInfo) {
	log.Printf("booking cancelled ref=%s barber=%d customer=%d %s %s-%s",
		info.Ref, info.BarberID, info.CustomerID, info.Date, info.From, info.To)
}
