package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/warehq/WSM-BookingService/internal/domain"
	"github.com/warehq/WSM-BookingService/pkg/dbmetrics"
	"github.com/warehq/WSM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с прайс-листами складов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория прайс-листов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWarehouseAndResource получает прайс-лист склада для типа ресурса
// вместе с порогами скидок за объем.
// Пороги загружаются отсортированными по УБЫВАНИЮ min_quantity: порядок
// фиксируется на границе хранилища, чтобы резолюция скидки
// (первый подходящий порог) была детерминированной.
func (r *Repository) GetByWarehouseAndResource(
	ctx context.Context,
	warehouseID int64,
	resourceType domain.ResourceType,
) (*domain.PricingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := scheduleSelect().
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		Where(squirrel.Eq{"resource_type": resourceType}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouseAndResource - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	schedule, err := scanSchedule(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouseAndResource - scan schedule: %v", ErrScanRow, err)
	}

	if err := r.loadDiscounts(ctx, executor, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetByWarehouse получает все прайс-листы склада (по одному на тип ресурса)
func (r *Repository) GetByWarehouse(ctx context.Context, warehouseID int64) ([]*domain.PricingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := scheduleSelect().
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		OrderBy("resource_type ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouse - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouse - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.PricingSchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByWarehouse - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByWarehouse - rows error: %v", ErrScanRow, err)
	}

	for _, schedule := range schedules {
		if err := r.loadDiscounts(ctx, executor, schedule); err != nil {
			return nil, err
		}
	}

	return schedules, nil
}

// Upsert создает или обновляет прайс-лист склада для типа ресурса
// и полностью заменяет его пороги скидок.
// Вызывается внутри транзакции (tx в контексте), чтобы прайс-лист
// и пороги менялись атомарно.
func (r *Repository) Upsert(ctx context.Context, schedule *domain.PricingSchedule) (*domain.PricingSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_schedules").
		Columns(
			"warehouse_id",
			"resource_type",
			"base_price",
			"billing_unit",
			"min_quantity",
			"max_quantity",
		).
		Values(
			schedule.WarehouseID,
			schedule.ResourceType,
			schedule.BasePrice,
			schedule.BillingUnit,
			schedule.MinQuantity,
			schedule.MaxQuantity,
		).
		Suffix(`ON CONFLICT (warehouse_id, resource_type) DO UPDATE SET
			base_price = EXCLUDED.base_price,
			billing_unit = EXCLUDED.billing_unit,
			min_quantity = EXCLUDED.min_quantity,
			max_quantity = EXCLUDED.max_quantity,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	// Полная замена порогов скидок
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("volume_discounts").
		Where(squirrel.Eq{"schedule_id": schedule.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build delete discounts query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Upsert - delete old discounts: %v", ErrExecQuery, err)
	}

	for _, d := range schedule.VolumeDiscounts {
		insertQuery, insertArgs, err := psqlbuilder.Insert("volume_discounts").
			Columns("schedule_id", "min_quantity", "percent").
			Values(schedule.ID, d.MinQuantity, d.Percent).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Upsert - build insert discount query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return nil, fmt.Errorf("%w: Upsert - insert discount: %v", ErrExecQuery, err)
		}
	}

	return schedule, nil
}

// loadDiscounts загружает пороги скидок прайс-листа (по убыванию порога)
func (r *Repository) loadDiscounts(ctx context.Context, executor dbmetrics.DBExecutor, schedule *domain.PricingSchedule) error {
	query, args, err := psqlbuilder.Select("min_quantity", "percent").
		From("volume_discounts").
		Where(squirrel.Eq{"schedule_id": schedule.ID}).
		OrderBy("min_quantity DESC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadDiscounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadDiscounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	discounts := make([]domain.VolumeDiscount, 0)
	for rows.Next() {
		var d domain.VolumeDiscount
		if err := rows.Scan(&d.MinQuantity, &d.Percent); err != nil {
			return fmt.Errorf("%w: loadDiscounts - scan row: %v", ErrScanRow, err)
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadDiscounts - rows error: %v", ErrScanRow, err)
	}

	schedule.VolumeDiscounts = discounts
	return nil
}

// scheduleSelect базовый SELECT по таблице pricing_schedules
func scheduleSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"warehouse_id",
		"resource_type",
		"base_price",
		"billing_unit",
		"min_quantity",
		"max_quantity",
		"created_at",
		"updated_at",
	).From("pricing_schedules")
}

// scanSchedule сканирует одну строку прайс-листа
func scanSchedule(scan func(dest ...interface{}) error) (*domain.PricingSchedule, error) {
	var schedule domain.PricingSchedule
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&schedule.ID,
		&schedule.WarehouseID,
		&schedule.ResourceType,
		&schedule.BasePrice,
		&schedule.BillingUnit,
		&schedule.MinQuantity,
		&schedule.MaxQuantity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}
