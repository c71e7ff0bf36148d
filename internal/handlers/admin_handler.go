package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{
		db:    db,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_minutes" binding:"required"`
	Price       float64 `json:"price"`
}

// ======================================================
// BARBEIROS
// ======================================================

func (h *AdminHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *AdminHandler) CreateBarber(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno.")
		return
	}

	barber := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleBarber,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_created",
		Entity:   "user",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusCreated, barber)
}

// DeleteBarber só remove barbeiro sem slot ocupado: agendamento vivo
// precisa ser cancelado antes.
func (h *AdminHandler) DeleteBarber(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}
	barberID := uint(id)

	var booked int64
	if err := h.db.
		Model(&models.AppointmentSlot{}).
		Where("barber_id = ? AND customer_id IS NOT NULL", barberID).
		Count(&booked).Error; err != nil {
		httperr.Internal(c, "failed_to_check_slots", "Erro interno.")
		return
	}

	if booked > 0 {
		httperr.Conflict(c, "barber_has_bookings", "Barbeiro tem agendamentos ativos.")
		return
	}

	res := h.db.
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		Delete(&models.User{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_deleted",
		Entity:   "user",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ======================================================
// SERVIÇOS
// ======================================================

func (h *AdminHandler) CreateService(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// a duração precisa caber na grade de 15 minutos
	if req.DurationMin <= 0 || req.DurationMin%15 != 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração precisa ser múltiplo de 15 minutos.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}
