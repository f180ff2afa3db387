package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/pkg/dbmetrics"
	"github.com/xsalon/scheduling-service/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"customer_id",
	"service_id",
	"scheduled_date",
	"scheduled_time",
	"estimated_duration_minutes",
	"estimated_end_time",
	"status",
	"queue_position",
	"checked_in_at",
	"started_at",
	"completed_at",
	"no_show_at",
	"actual_duration_minutes",
	"payment_status",
	"advance_amount",
	"total_amount",
	"payment_reference",
	"paid_at",
	"refund_requested_at",
	"refunded_at",
	"notes",
	"admin_notes",
	"created_at",
	"updated_at",
}

// Repository persists appointments.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment and fills in ID and timestamps.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pay := flattenPayment(appt.Payment)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"service_id",
			"scheduled_date",
			"scheduled_time",
			"estimated_duration_minutes",
			"estimated_end_time",
			"status",
			"queue_position",
			"payment_status",
			"advance_amount",
			"total_amount",
			"payment_reference",
			"notes",
		).
		Values(
			appt.CustomerID,
			appt.ServiceID,
			appt.ScheduledDate,
			appt.ScheduledTime,
			appt.EstimatedDurationMinutes,
			appt.EstimatedEndTime,
			appt.Status,
			appt.QueuePosition,
			pay.status,
			pay.advanceAmount,
			pay.totalAmount,
			pay.reference,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches one appointment.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return appt, nil
}

// GetByPaymentReference fetches the appointment holding the given provider
// transaction reference.
func (r *Repository) GetByPaymentReference(ctx context.Context, reference string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"payment_reference": reference})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentReference - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return appt, nil
}

// GetByDate returns the appointments scheduled on the given calendar day,
// ordered by start time. With onlyBlocking, cancelled and no-show entries are
// excluded. Inside a managed transaction the rows are locked FOR UPDATE so
// admission checks and the subsequent insert act on a consistent snapshot.
func (r *Repository) GetByDate(ctx context.Context, date time.Time, onlyBlocking bool) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"scheduled_date": domain.DayOf(date)}).
		OrderBy("scheduled_time ASC", "id ASC")

	if onlyBlocking {
		builder = builder.Where(squirrel.Eq{"status": statusStrings(domain.BlockingStatuses)})
	}

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetQueueForDate returns the day's active queue set (CONFIRMED, CHECKED_IN,
// IN_PROGRESS) ordered by queue position with unpositioned entries last.
func (r *Repository) GetQueueForDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"scheduled_date": domain.DayOf(date)}).
		Where(squirrel.Eq{"status": statusStrings(domain.QueueStatuses)}).
		OrderBy("queue_position ASC NULLS LAST", "scheduled_time ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetQueueForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetQueueForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByCustomer returns a page of the customer's appointment history, newest
// first, optionally filtered by status.
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus, limit, offset uint64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("scheduled_date DESC", "scheduled_time DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}
	if limit > 0 {
		builder = builder.Limit(limit).Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountByCustomer returns the customer's total appointment count for the same
// filter as GetByCustomer, used for pagination.
func (r *Repository) CountByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID})

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCustomer - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update persists all mutable fields of the appointment and returns it.
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pay := flattenPayment(appt.Payment)

	query, args, err := psqlbuilder.Update("appointments").
		Set("scheduled_date", appt.ScheduledDate).
		Set("scheduled_time", appt.ScheduledTime).
		Set("estimated_duration_minutes", appt.EstimatedDurationMinutes).
		Set("estimated_end_time", appt.EstimatedEndTime).
		Set("status", appt.Status).
		Set("queue_position", appt.QueuePosition).
		Set("checked_in_at", appt.CheckedInAt).
		Set("started_at", appt.StartedAt).
		Set("completed_at", appt.CompletedAt).
		Set("no_show_at", appt.NoShowAt).
		Set("actual_duration_minutes", appt.ActualDurationMinutes).
		Set("payment_status", pay.status).
		Set("advance_amount", pay.advanceAmount).
		Set("total_amount", pay.totalAmount).
		Set("payment_reference", pay.reference).
		Set("paid_at", pay.paidAt).
		Set("refund_requested_at", pay.refundRequestedAt).
		Set("refunded_at", pay.refundedAt).
		Set("notes", appt.Notes).
		Set("admin_notes", appt.AdminNotes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appt, nil
}

// UpdateQueuePosition sets or clears one appointment's queue position.
func (r *Repository) UpdateQueuePosition(ctx context.Context, id int64, position *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("queue_position", position).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateQueuePosition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateQueuePosition - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateQueuePosition - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CancelStalePendingPayment cancels every PENDING_PAYMENT appointment created
// before cutoff and returns the number of rows affected. Used by the daily
// cleanup sweep.
func (r *Repository) CancelStalePendingPayment(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPendingPayment}).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelStalePendingPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelStalePendingPayment - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelStalePendingPayment - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt      domain.Appointment
		pay       paymentRow
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.ServiceID,
		&appt.ScheduledDate,
		&appt.ScheduledTime,
		&appt.EstimatedDurationMinutes,
		&appt.EstimatedEndTime,
		&appt.Status,
		&appt.QueuePosition,
		&appt.CheckedInAt,
		&appt.StartedAt,
		&appt.CompletedAt,
		&appt.NoShowAt,
		&appt.ActualDurationMinutes,
		&pay.status,
		&pay.advanceAmount,
		&pay.totalAmount,
		&pay.reference,
		&pay.paidAt,
		&pay.refundRequestedAt,
		&pay.refundedAt,
		&appt.Notes,
		&appt.AdminNotes,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanAppointment - scan row: %v", ErrScanRow, err)
	}

	appt.Payment, err = pay.toDomain()
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
