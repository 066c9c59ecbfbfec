package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/Clinic-SchedulingService/pkg/txmanager"
)

// Столбцы таблицы appointments в порядке сканирования
var columns = []string{
	"booking_id",
	"confirmation_code",
	"status",
	"category",
	"appointment_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"patient_name",
	"patient_email",
	"patient_phone",
	"reason",
	"created_at",
}

// Repository postgres-репозиторий записей на приём.
// Если в контексте есть активная транзакция (см. pkg/txmanager),
// запросы выполняются внутри неё.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый репозиторий
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"booking_id",
			"confirmation_code",
			"status",
			"category",
			"appointment_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"patient_name",
			"patient_email",
			"patient_phone",
			"reason",
		).
		Values(
			appointment.BookingID,
			appointment.ConfirmationCode,
			appointment.Status,
			appointment.Category,
			appointment.Date,
			appointment.StartTime,
			appointment.EndTime,
			appointment.DurationMinutes,
			appointment.Patient.Name,
			appointment.Patient.Email,
			appointment.Patient.Phone,
			appointment.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	return appointment, nil
}

// GetByBookingID получает запись по booking_id
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// GetByDate получает записи на дату в хронологическом порядке.
// Внутри транзакции добавляет FOR UPDATE - блокировка строк даты закрывает
// гонку между проверкой доступности и вставкой новой записи.
func (r *Repository) GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date}).
		OrderBy("start_time ASC")

	if onlyConfirmed {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// Cancel переводит запись в статус cancelled. Повторная отмена уже
// отменённой записи - no-op, завершающийся успехом (идемпотентная отмена,
// политика совпадает с файловым бэкендом).
func (r *Repository) Cancel(ctx context.Context, bookingID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appointment.BookingID,
		&appointment.ConfirmationCode,
		&appointment.Status,
		&appointment.Category,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.DurationMinutes,
		&appointment.Patient.Name,
		&appointment.Patient.Email,
		&appointment.Patient.Phone,
		&appointment.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.CreatedAt = createdAt.Time
	return &appointment, nil
}
