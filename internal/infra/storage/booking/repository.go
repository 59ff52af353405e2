package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/warehq/WSM-BookingService/internal/domain"
	"github.com/warehq/WSM-BookingService/pkg/dbmetrics"
	"github.com/warehq/WSM-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"warehouse_id",
	"customer_id",
	"resource_type",
	"quantity",
	"start_date",
	"end_date",
	"status",
	"unit_price",
	"billing_unit",
	"billing_periods",
	"base_amount",
	"volume_discount_amount",
	"membership_discount_amount",
	"total_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе со снапшотом цены.
// Если в контексте передана активная транзакция (через context.Value),
// использует её - так работает admission workflow, где создание должно
// произойти в той же транзакции, что и проверка доступности.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"warehouse_id",
			"customer_id",
			"resource_type",
			"quantity",
			"start_date",
			"end_date",
			"status",
			"unit_price",
			"billing_unit",
			"billing_periods",
			"base_amount",
			"volume_discount_amount",
			"membership_discount_amount",
			"total_price",
			"notes",
		).
		Values(
			booking.WarehouseID,
			booking.CustomerID,
			booking.ResourceType,
			booking.Quantity,
			booking.StartDate,
			booking.EndDate,
			booking.Status,
			booking.UnitPrice,
			booking.BillingUnit,
			booking.BillingPeriods,
			booking.BaseAmount,
			booking.VolumeDiscountAmount,
			booking.MembershipDiscountAmount,
			booking.TotalPrice,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetOverlapping получает все бронирования склада по типу ресурса,
// занимающие емкость и пересекающие полуоткрытый интервал [startDate, endDate).
//
// Предикат пересечения полуоткрытых интервалов:
//
//	booking.start_date < endDate AND booking.end_date > startDate
//
// - бронирования, граничащие по дате с окном запроса, НЕ попадают в выборку.
//
// Внутри транзакции добавляется FOR UPDATE: admission workflow блокирует
// пересекающиеся бронирования на время проверки доступности и вставки.
func (r *Repository) GetOverlapping(
	ctx context.Context,
	warehouseID int64,
	resourceType domain.ResourceType,
	startDate, endDate time.Time,
) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupancyStatuses := make([]string, len(domain.OccupancyStatuses))
	for i, s := range domain.OccupancyStatuses {
		occupancyStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		Where(squirrel.Eq{"resource_type": resourceType}).
		Where(squirrel.Eq{"status": occupancyStatuses}).
		Where(squirrel.Lt{"start_date": endDate}).
		Where(squirrel.Gt{"end_date": startDate}).
		OrderBy("start_date ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomerID получает список бронирований клиента
// Опционально фильтрует по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_date DESC, id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByWarehouseWithFilter получает бронирования склада с гибкой фильтрацией:
// по типу ресурса, клиенту, окну пересечения дат, статусу и признаку
// занятия емкости
func (r *Repository) GetByWarehouseWithFilter(ctx context.Context, filter domain.WarehouseBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"warehouse_id": filter.WarehouseID})

	if filter.ResourceType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_type": *filter.ResourceType})
	}

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}

	// Окно пересечения: та же полуоткрытая семантика, что и в GetOverlapping
	if filter.OverlapsEnd != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_date": *filter.OverlapsEnd})
	}
	if filter.OverlapsStart != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_date": *filter.OverlapsStart})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OccupancyOnly {
		occupancyStatuses := make([]string, len(domain.OccupancyStatuses))
		for i, s := range domain.OccupancyStatuses {
			occupancyStatuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": occupancyStatuses})
	}

	selectBuilder = selectBuilder.OrderBy("start_date DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouseWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouseWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.WarehouseID,
		&booking.CustomerID,
		&booking.ResourceType,
		&booking.Quantity,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.UnitPrice,
		&booking.BillingUnit,
		&booking.BillingPeriods,
		&booking.BaseAmount,
		&booking.VolumeDiscountAmount,
		&booking.MembershipDiscountAmount,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
