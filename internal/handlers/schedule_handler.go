package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// ScheduleHandler é a superfície do calendário do barbeiro: gerenciar os
// próprios slots e ver/cancelar agendamentos. Checagens de dono ficam
// aqui — o motor nunca olha sessão.
type ScheduleHandler struct {
	repo         domain.Repository
	addSlots     *ucSchedule.AddSlots
	removeSlots  *ucSchedule.RemoveSlots
	bulkGenerate *ucSchedule.BulkGenerate
	appointments *ucSchedule.ListAppointments
	cancel       *ucBooking.Cancel
}

func NewScheduleHandler(
	repo domain.Repository,
	addSlots *ucSchedule.AddSlots,
	removeSlots *ucSchedule.RemoveSlots,
	bulkGenerate *ucSchedule.BulkGenerate,
	appointments *ucSchedule.ListAppointments,
	cancel *ucBooking.Cancel,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:         repo,
		addSlots:     addSlots,
		removeSlots:  removeSlots,
		bulkGenerate: bulkGenerate,
		appointments: appointments,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SlotListRequest struct {
	Slots []domain.SlotPair `json:"slots" binding:"required,min=1,dive"`
}

type BulkGenerateRequest struct {
	StartDate  string `json:"start_date" binding:"required"`
	DaysOfWeek []int  `json:"days_of_week" binding:"required,min=1"`
	WeekCount  int    `json:"week_count" binding:"required,min=1"`
	FromTime   string `json:"from_time" binding:"required"`
	ToTime     string `json:"to_time" binding:"required"`
}

// ======================================================
// SLOTS DA SEMANA
// ======================================================

func (h *ScheduleHandler) GetSlots(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	start := c.Query("start")
	if start == "" {
		start = time.Now().Format(domain.DateLayout)
	}

	day, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// visão de calendário: os 7 dias a partir de start
	week := domain.WeekDates(day)
	end := week[len(week)-1].AddDate(0, 0, 1).Format(domain.DateLayout)

	slots, err := h.repo.ListSlotsForBarber(c.Request.Context(), barberID, start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Erro ao listar slots.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// ADD / REMOVE
// ======================================================

func (h *ScheduleHandler) AddSlots(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req SlotListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.addSlots.Execute(c.Request.Context(), barberID, req.Slots)
	if err != nil {
		httperr.Internal(c, "failed_to_add_slots", "Erro ao adicionar slots.")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ScheduleHandler) RemoveSlots(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req SlotListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.removeSlots.Execute(c.Request.Context(), barberID, req.Slots)
	if err != nil {
		httperr.Internal(c, "failed_to_remove_slots", "Erro ao remover slots.")
		return
	}

	// Removed < Requested significa slots ocupados pulados — a UI avisa,
	// não é falha
	c.JSON(http.StatusOK, result)
}

func (h *ScheduleHandler) BulkGenerate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req BulkGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	result, err := h.bulkGenerate.Execute(c.Request.Context(), barberID, ucSchedule.BulkGenerateInput{
		StartDate:  req.StartDate,
		DaysOfWeek: req.DaysOfWeek,
		WeekCount:  req.WeekCount,
		FromTime:   req.FromTime,
		ToTime:     req.ToTime,
	})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Padrão de geração inválido.")
			return
		}
		httperr.Internal(c, "failed_to_generate_slots", "Erro ao gerar slots.")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ======================================================
// AGENDAMENTOS DO DIA
// ======================================================

func (h *ScheduleHandler) ListAppointments(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	appointments, err := h.appointments.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

// CancelAppointment é o cancelamento iniciado pelo barbeiro; só permite
// cancelar agendamento da própria agenda.
func (h *ScheduleHandler) CancelAppointment(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	ref := c.Param("ref")
	if ref == "" {
		httperr.BadRequest(c, "missing_ref", "Referência obrigatória.")
		return
	}

	released, err := h.cancel.Execute(c.Request.Context(), ucBooking.CancelInput{
		Ref:      ref,
		BarberID: &barberID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "unauthorized"):
			httperr.Forbidden(c, "unauthorized", "Esse agendamento não é da sua agenda.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "cancelled",
		"released": released,
	})
}
