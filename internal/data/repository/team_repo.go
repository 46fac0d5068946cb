package repository

import (
	"context"
	"errors"
	"fmt"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TeamFilter struct {
	Search string
	Area   string
	Limit  int
	Offset int
}

type TeamRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	FindAll(ctx context.Context, filter TeamFilter) ([]*entity.TeamMember, error)
	Count(ctx context.Context, filter TeamFilter) (int64, error)
	Areas(ctx context.Context) ([]string, error)
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type teamRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTeamRepository(db database.PgxIface, log *zap.Logger) TeamRepository {
	return &teamRepository{
		db:  db,
		log: log.With(zap.String("repository", "team")),
	}
}

const teamColumns = `id, name, role, phone, area, outlets, photo, created_by, created_at, updated_at`

func scanTeamMember(row pgx.Row) (*entity.TeamMember, error) {
	var m entity.TeamMember
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Role,
		&m.Phone,
		&m.Area,
		&m.Outlets,
		&m.Photo,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func teamWhere(filter TeamFilter) *whereClause {
	var w whereClause
	w.addSearch(filter.Search, "name", "area", "role", "outlets")
	if filter.Area != "" {
		w.add("area = ?", filter.Area)
	}
	return &w
}

func (r *teamRepository) Create(ctx context.Context, m *entity.TeamMember) error {
	query := `
		INSERT INTO teams (id, name, role, phone, area, outlets, photo, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Role, m.Phone, m.Area, m.Outlets, m.Photo, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create team member", zap.Error(err), zap.String("name", m.Name))
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	m, err := scanTeamMember(r.db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find team member by ID", zap.Error(err), zap.String("team_id", id.String()))
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	return m, nil
}

func (r *teamRepository) FindAll(ctx context.Context, filter TeamFilter) ([]*entity.TeamMember, error) {
	w := teamWhere(filter)
	suffix, args := w.page(filter.Limit, filter.Offset)
	query := `SELECT ` + teamColumns + ` FROM teams` + w.String() + ` ORDER BY area ASC, name ASC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find team members", zap.Error(err))
		return nil, fmt.Errorf("failed to find team members: %w", err)
	}
	defer rows.Close()

	members := []*entity.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			r.log.Error("Failed to scan team row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return members, nil
}

func (r *teamRepository) Count(ctx context.Context, filter TeamFilter) (int64, error) {
	w := teamWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teams`+w.String(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count team members", zap.Error(err))
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return total, nil
}

func (r *teamRepository) Areas(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT area FROM teams WHERE area <> '' ORDER BY area`)
	if err != nil {
		r.log.Error("Failed to list areas", zap.Error(err))
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	areas := []string{}
	for rows.Next() {
		var area string
		if err := rows.Scan(&area); err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, m *entity.TeamMember) error {
	query := `
		UPDATE teams
		SET name = $2, role = $3, phone = $4, area = $5, outlets = $6, photo = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Role, m.Phone, m.Area, m.Outlets, m.Photo, m.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update team member", zap.Error(err), zap.String("team_id", m.ID.String()))
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("team member: %w", ErrNotAffected)
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete team member", zap.Error(err), zap.String("team_id", id.String()))
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("team member: %w", ErrNotAffected)
	}
	return nil
}
