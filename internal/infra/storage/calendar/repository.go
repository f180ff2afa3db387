package calendar

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

var ruleColumns = []string{
	"id",
	"weekday",
	"opening_time",
	"closing_time",
	"is_closed",
	"created_at",
	"updated_at",
}

// Repository persists weekly opening-hour rules.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday fetches the rule for one weekday (0 = Sunday).
func (r *Repository) GetByWeekday(ctx context.Context, weekday int) (*domain.CalendarRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("calendar_rules").
		Where(squirrel.Eq{"weekday": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}

	return rule, nil
}

// List returns the rules for all weekdays ordered Sunday first.
func (r *Repository) List(ctx context.Context) ([]*domain.CalendarRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("calendar_rules").
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.CalendarRule, 0, 7)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Upsert writes the rule for its weekday, inserting or replacing.
func (r *Repository) Upsert(ctx context.Context, rule *domain.CalendarRule) (*domain.CalendarRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_rules").
		Columns("weekday", "opening_time", "closing_time", "is_closed").
		Values(rule.Weekday, rule.OpeningTime, rule.ClosingTime, rule.IsClosed).
		Suffix(`ON CONFLICT (weekday) DO UPDATE SET
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.CalendarRule, error) {
	var (
		rule      domain.CalendarRule
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&rule.ID,
		&rule.Weekday,
		&rule.OpeningTime,
		&rule.ClosingTime,
		&rule.IsClosed,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanRule - scan row: %v", ErrScanRow, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
