package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	search *ucBooking.SearchAvailability
	repo   domain.Repository
}

func NewAvailabilityHandler(
	search *ucBooking.SearchAvailability,
	repo domain.Repository,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		search: search,
		repo:   repo,
	}
}

// ======================================================
// CATÁLOGO PÚBLICO
// ======================================================

func (h *AvailabilityHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	type barberDTO struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	out := make([]barberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, barberDTO{ID: b.ID, Name: b.Name})
	}

	httpresp.List(c, out)
}

func (h *AvailabilityHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// Availability calcula as janelas candidatas. barber_id=0 significa
// "qualquer barbeiro" (resolver aplicado). Lista vazia é resposta normal.
func (h *AvailabilityHandler) Availability(c *gin.Context) {

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "missing_service", "Serviço obrigatório.")
		return
	}

	barberID := uint64(0)
	if v := c.Query("barber_id"); v != "" {
		barberID, err = strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber", "Barbeiro inválido.")
			return
		}
	}

	windows, err := h.search.Execute(c.Request.Context(), ucBooking.SearchAvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      c.Query("date"),
		Today:     time.Now(),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "Duração inválida para a grade de horários.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		default:
			httperr.Internal(c, "availability_error", "Erro ao calcular disponibilidade.")
		}
		return
	}

	httpresp.List(c, windows)
}
