package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	book   *ucBooking.Book
	cancel *ucBooking.Cancel
}

func NewBookingHandler(
	book *ucBooking.Book,
	cancel *ucBooking.Cancel,
) *BookingHandler {
	return &BookingHandler{
		book:   book,
		cancel: cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	From      string `json:"from" binding:"required"` // HH:mm
	To        string `json:"to" binding:"required"`   // HH:mm
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		BarberID:   req.BarberID,
		CustomerID: customerID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "A janela não corresponde à duração do serviço.")
		case httperr.IsBusiness(err, "one_appointment_per_day"):
			httperr.Conflict(c, "one_appointment_per_day", "Você já tem um agendamento nesse dia.")
		case httperr.IsBusiness(err, "already_booked"):
			// perdeu a corrida: o cliente deve buscar de novo e escolher outra janela
			httperr.Conflict(c, "already_booked", "Horário acabou de ser ocupado. Busque novamente.")
		default:
			httperr.Internal(c, "failed_to_book", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// CANCEL (por ref)
// ======================================================

// CancelByRef atende o link de cancelamento enviado por e-mail: o ref é
// a prova de posse, não exige login.
func (h *BookingHandler) CancelByRef(c *gin.Context) {
	ref := c.Param("ref")
	if ref == "" {
		httperr.BadRequest(c, "missing_ref", "Referência obrigatória.")
		return
	}

	released, err := h.cancel.Execute(c.Request.Context(), ucBooking.CancelInput{
		Ref: ref,
	})
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "cancelled",
		"released": released,
	})
}

// CancelMine é o cancelamento autenticado do próprio cliente.
func (h *BookingHandler) CancelMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	ref := c.Param("ref")
	if ref == "" {
		httperr.BadRequest(c, "missing_ref", "Referência obrigatória.")
		return
	}

	released, err := h.cancel.Execute(c.Request.Context(), ucBooking.CancelInput{
		Ref:        ref,
		CustomerID: &customerID,
	})
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "cancelled",
		"released": released,
	})
}
