package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/warehq/WSM-BookingService/internal/domain"
	"github.com/warehq/WSM-BookingService/pkg/dbmetrics"
	"github.com/warehq/WSM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения складов
// Управление складами (создание, редактирование) живет в отдельном
// каталоге-сервисе; этому сервису нужна только емкость и владелец
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория складов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает склад по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"city",
		"pallet_capacity",
		"area_capacity_sqft",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("warehouses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.Warehouse
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.OwnerID,
		&wh.Name,
		&wh.City,
		&wh.PalletCapacity,
		&wh.AreaCapacitySqFt,
		&wh.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWarehouseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan warehouse: %v", ErrScanRow, err)
	}

	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}
