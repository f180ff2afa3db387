package servicecatalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/pkg/dbmetrics"
	"github.com/xsalon/scheduling-service/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name_en",
	"name_am",
	"description_en",
	"description_am",
	"price",
	"duration_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository reads the salon service catalog.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, serviceID int64) (*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("name_en ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []*domain.ServiceDefinition
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.ServiceDefinition, error) {
	var (
		svc           domain.ServiceDefinition
		descriptionEN sql.NullString
		descriptionAM sql.NullString
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := row.Scan(
		&svc.ID,
		&svc.NameEN,
		&svc.NameAM,
		&descriptionEN,
		&descriptionAM,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.IsActive,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanService - scan row: %v", ErrScanRow, err)
	}

	if descriptionEN.Valid {
		svc.DescriptionEN = &descriptionEN.String
	}
	if descriptionAM.Valid {
		svc.DescriptionAM = &descriptionAM.String
	}
	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
