package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// Slots (leitura)
// --------------------------------------------------

func (r *SlotGormRepository) ListOpenSlots(
	ctx context.Context,
	barberID uint,
	fromDay string,
	toDay string,
) ([]domain.OpenSlot, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where("customer_id IS NULL AND day >= ? AND day < ?", fromDay, toDay)

	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var rows []models.AppointmentSlot
	if err := q.
		Select("day", "barber_id", "start_time").
		Order("day ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	slots := make([]domain.OpenSlot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, domain.OpenSlot{
			Day:       row.Day,
			BarberID:  row.BarberID,
			StartTime: row.StartTime,
		})
	}

	return slots, nil
}

func (r *SlotGormRepository) ListSlotsForBarber(
	ctx context.Context,
	barberID uint,
	fromDay string,
	toDay string,
) ([]models.AppointmentSlot, error) {

	var rows []models.AppointmentSlot
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day >= ? AND day < ?", barberID, fromDay, toDay).
		Order("day ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *SlotGormRepository) ListSlotsByRef(
	ctx context.Context,
	ref string,
) ([]models.AppointmentSlot, error) {

	var rows []models.AppointmentSlot
	if err := r.db.WithContext(ctx).
		Where("booking_ref = ?", ref).
		Order("day ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Slots (mutação do barbeiro)
// --------------------------------------------------

// InsertSlots é idempotente: re-inserir uma tripla existente é no-op
// (ON CONFLICT DO NOTHING) e não conta no retorno.
func (r *SlotGormRepository) InsertSlots(
	ctx context.Context,
	barberID uint,
	pairs []domain.SlotPair,
) (int, error) {

	if len(pairs) == 0 {
		return 0, nil
	}

	rows := make([]models.AppointmentSlot, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, models.AppointmentSlot{
			Day:       p.Date,
			BarberID:  barberID,
			StartTime: p.Time,
		})
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)

	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			// corrida com outra inserção da mesma tripla: trate como no-op
			return 0, nil
		}
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}

// DeleteOpenSlots recusa silenciosamente slots ocupados: o guard
// customer_id IS NULL faz o DELETE não afetar linha nenhuma e o chamador
// percebe pela contagem menor.
func (r *SlotGormRepository) DeleteOpenSlots(
	ctx context.Context,
	barberID uint,
	pairs []domain.SlotPair,
) (int, error) {

	removed := 0

	for _, p := range pairs {
		res := r.db.WithContext(ctx).
			Where(
				"day = ? AND barber_id = ? AND start_time = ? AND customer_id IS NULL",
				p.Date, barberID, p.Time,
			).
			Delete(&models.AppointmentSlot{})

		if res.Error != nil {
			return removed, res.Error
		}
		removed += int(res.RowsAffected)
	}

	return removed, nil
}

// --------------------------------------------------
// Reserva (claim / release)
// --------------------------------------------------

// ClaimSlots ocupa os N slots de [From, To) numa única transação.
// Cada UPDATE é condicionado a customer_id IS NULL; se qualquer um não
// afetar linha (outro cliente ganhou a corrida), a transação inteira é
// desfeita e o chamador recebe already_booked.
func (r *SlotGormRepository) ClaimSlots(
	ctx context.Context,
	in domain.ClaimInput,
) error {

	times, err := domain.ExpandWindow(in.From, in.To)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		for _, t := range times {
			res := tx.Model(&models.AppointmentSlot{}).
				Where(
					"day = ? AND barber_id = ? AND start_time = ? AND customer_id IS NULL",
					in.Date, in.BarberID, t,
				).
				Updates(map[string]any{
					"customer_id": in.CustomerID,
					"service_id":  in.ServiceID,
					"booking_ref": in.Ref,
				})

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("already_booked")
			}
		}

		return nil
	})
}

func (r *SlotGormRepository) HasBookingOnDay(
	ctx context.Context,
	customerID uint,
	day string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where("customer_id = ? AND day = ?", customerID, day).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SlotGormRepository) ReleaseByRef(
	ctx context.Context,
	ref string,
	customerID *uint,
) (int, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where("booking_ref = ?", ref)

	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	res := q.Updates(map[string]any{
		"customer_id": nil,
		"service_id":  nil,
		"booking_ref": "",
	})
	if res.Error != nil {
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}

func (r *SlotGormRepository) ReleaseSlots(
	ctx context.Context,
	barberID uint,
	customerID uint,
	day string,
	from string,
	to string,
) (int, error) {

	times, err := domain.ExpandWindow(from, to)
	if err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).
		Model(&models.AppointmentSlot{}).
		Where(
			"day = ? AND barber_id = ? AND customer_id = ? AND start_time IN ?",
			day, barberID, customerID, times,
		).
		Updates(map[string]any{
			"customer_id": nil,
			"service_id":  nil,
			"booking_ref": "",
		})
	if res.Error != nil {
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *SlotGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", serviceID, true).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *SlotGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("duration_min ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SlotGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.User, error) {

	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
