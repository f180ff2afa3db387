package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xsalon/scheduling-service/internal/domain"
	"github.com/xsalon/scheduling-service/pkg/dbmetrics"
	"github.com/xsalon/scheduling-service/pkg/psqlbuilder"
)

var settingsColumns = []string{
	"id",
	"name_en",
	"name_am",
	"location_en",
	"location_am",
	"contact_phone",
	"contact_email",
	"advance_payment_percentage",
	"created_at",
	"updated_at",
}

// Repository reads the single-row salon settings.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("salon_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s         domain.SalonSettings
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.NameEN,
		&s.NameAM,
		&s.LocationEN,
		&s.LocationAM,
		&s.ContactPhone,
		&s.ContactEmail,
		&s.AdvancePaymentPercentage,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
