package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ChartFilter struct {
	Search string
	Limit  int
	Offset int
}

type ChartRepository interface {
	Create(ctx context.Context, chart *entity.Chart) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chart, error)
	FindAll(ctx context.Context, filter ChartFilter) ([]*entity.Chart, error)
	Count(ctx context.Context, filter ChartFilter) (int64, error)
	Update(ctx context.Context, chart *entity.Chart) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type chartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChartRepository(db database.PgxIface, log *zap.Logger) ChartRepository {
	return &chartRepository{
		db:  db,
		log: log.With(zap.String("repository", "chart")),
	}
}

const chartColumns = `id, title, type, sheet_url, description, config, created_by, created_at, updated_at`

func scanChart(row pgx.Row) (*entity.Chart, error) {
	var (
		c         entity.Chart
		configRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Type,
		&c.SheetURL,
		&c.Description,
		&configRaw,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(configRaw, &c.Config); err != nil {
		return nil, fmt.Errorf("decode config of chart %s: %w", c.ID, err)
	}
	return &c, nil
}

func chartWhere(filter ChartFilter) *whereClause {
	var w whereClause
	w.addSearch(filter.Search, "title", "description")
	return &w
}

func (r *chartRepository) Create(ctx context.Context, c *entity.Chart) error {
	configRaw, err := json.Marshal(c.Config)
	if err != nil {
		return fmt.Errorf("encode chart config: %w", err)
	}

	query := `
		INSERT INTO charts (id, title, type, sheet_url, description, config, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		c.ID, c.Title, c.Type, c.SheetURL, c.Description, configRaw, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create chart", zap.Error(err), zap.String("title", c.Title))
		return fmt.Errorf("failed to create chart: %w", err)
	}
	return nil
}

func (r *chartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chart, error) {
	c, err := scanChart(r.db.QueryRow(ctx, `SELECT `+chartColumns+` FROM charts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find chart by ID", zap.Error(err), zap.String("chart_id", id.String()))
		return nil, fmt.Errorf("failed to find chart: %w", err)
	}
	return c, nil
}

func (r *chartRepository) FindAll(ctx context.Context, filter ChartFilter) ([]*entity.Chart, error) {
	w := chartWhere(filter)
	suffix, args := w.page(filter.Limit, filter.Offset)
	query := `SELECT ` + chartColumns + ` FROM charts` + w.String() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find charts", zap.Error(err))
		return nil, fmt.Errorf("failed to find charts: %w", err)
	}
	defer rows.Close()

	charts := []*entity.Chart{}
	for rows.Next() {
		c, err := scanChart(rows)
		if err != nil {
			r.log.Error("Failed to scan chart row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan chart: %w", err)
		}
		charts = append(charts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return charts, nil
}

func (r *chartRepository) Count(ctx context.Context, filter ChartFilter) (int64, error) {
	w := chartWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM charts`+w.String(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count charts", zap.Error(err))
		return 0, fmt.Errorf("failed to count charts: %w", err)
	}
	return total, nil
}

func (r *chartRepository) Update(ctx context.Context, c *entity.Chart) error {
	configRaw, err := json.Marshal(c.Config)
	if err != nil {
		return fmt.Errorf("encode chart config: %w", err)
	}

	query := `
		UPDATE charts
		SET title = $2, type = $3, sheet_url = $4, description = $5, config = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, c.ID, c.Title, c.Type, c.SheetURL, c.Description, configRaw, c.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update chart", zap.Error(err), zap.String("chart_id", c.ID.String()))
		return fmt.Errorf("failed to update chart: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("chart: %w", ErrNotAffected)
	}
	return nil
}

func (r *chartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM charts WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete chart", zap.Error(err), zap.String("chart_id", id.String()))
		return fmt.Errorf("failed to delete chart: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("chart: %w", ErrNotAffected)
	}
	return nil
}
