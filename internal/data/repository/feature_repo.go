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

type FeatureFilter struct {
	Search string
	Limit  int
	Offset int
}

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feature, error)
	FindAll(ctx context.Context, filter FeatureFilter) ([]*entity.Feature, error)
	Count(ctx context.Context, filter FeatureFilter) (int64, error)
	FindByAssignedUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feature, error)
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	RemoveUserAssignments(ctx context.Context, userID uuid.UUID) (int64, error)
}

type featureRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeatureRepository(db database.PgxIface, log *zap.Logger) FeatureRepository {
	return &featureRepository{
		db:  db,
		log: log.With(zap.String("repository", "feature")),
	}
}

const featureColumns = `id, title, icon, default_type, default_url, default_sub_menus,
		       assigned_to, created_at, updated_at`

func scanFeature(row pgx.Row) (*entity.Feature, error) {
	var (
		f           entity.Feature
		subMenusRaw []byte
		assignedRaw []byte
	)

	err := row.Scan(
		&f.ID,
		&f.Title,
		&f.Icon,
		&f.Default.Type,
		&f.Default.URL,
		&subMenusRaw,
		&assignedRaw,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(subMenusRaw, &f.Default.SubMenus); err != nil {
		return nil, fmt.Errorf("decode default_sub_menus of %s: %w", f.ID, err)
	}
	if err := json.Unmarshal(assignedRaw, &f.AssignedTo); err != nil {
		return nil, fmt.Errorf("decode assigned_to of %s: %w", f.ID, err)
	}
	if f.Default.SubMenus == nil {
		f.Default.SubMenus = []entity.SubMenu{}
	}

	return &f, nil
}

func encodeFeatureDocs(f *entity.Feature) ([]byte, []byte, error) {
	subMenus := f.Default.SubMenus
	if subMenus == nil {
		subMenus = []entity.SubMenu{}
	}
	assigned := f.AssignedTo
	if assigned == nil {
		assigned = []entity.Assignment{}
	}

	subMenusRaw, err := json.Marshal(subMenus)
	if err != nil {
		return nil, nil, fmt.Errorf("encode sub menus: %w", err)
	}
	assignedRaw, err := json.Marshal(assigned)
	if err != nil {
		return nil, nil, fmt.Errorf("encode assignments: %w", err)
	}
	return subMenusRaw, assignedRaw, nil
}

func (r *featureRepository) Create(ctx context.Context, f *entity.Feature) error {
	subMenusRaw, assignedRaw, err := encodeFeatureDocs(f)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO features (id, title, icon, default_type, default_url, default_sub_menus,
		                      assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		f.ID,
		f.Title,
		f.Icon,
		f.Default.Type,
		f.Default.URL,
		subMenusRaw,
		assignedRaw,
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create feature", zap.Error(err), zap.String("title", f.Title))
		return fmt.Errorf("failed to create feature: %w", err)
	}

	return nil
}

func (r *featureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features WHERE id = $1`

	f, err := scanFeature(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find feature by ID", zap.Error(err), zap.String("feature_id", id.String()))
		return nil, fmt.Errorf("failed to find feature: %w", err)
	}

	return f, nil
}

func (r *featureRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Feature, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	features := []*entity.Feature{}
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			r.log.Error("Failed to scan feature row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return features, nil
}

func (r *featureRepository) FindAll(ctx context.Context, filter FeatureFilter) ([]*entity.Feature, error) {
	var w whereClause
	w.addSearch(filter.Search, "title")
	suffix, args := w.page(filter.Limit, filter.Offset)

	query := `SELECT ` + featureColumns + ` FROM features` + w.String() + ` ORDER BY created_at DESC` + suffix

	features, err := r.queryMany(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all features",
			zap.Error(err),
			zap.Int("offset", filter.Offset),
			zap.Int("limit", filter.Limit),
		)
		return nil, fmt.Errorf("failed to find features: %w", err)
	}

	return features, nil
}

func (r *featureRepository) Count(ctx context.Context, filter FeatureFilter) (int64, error) {
	var w whereClause
	w.addSearch(filter.Search, "title")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM features`+w.String(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count features", zap.Error(err))
		return 0, fmt.Errorf("failed to count features: %w", err)
	}

	return total, nil
}

// FindByAssignedUser uses the GIN index on assigned_to.
func (r *featureRepository) FindByAssignedUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feature, error) {
	containment, err := json.Marshal([]map[string]string{{"user": userID.String()}})
	if err != nil {
		return nil, fmt.Errorf("encode containment: %w", err)
	}

	query := `SELECT ` + featureColumns + ` FROM features WHERE assigned_to @> $1 ORDER BY created_at ASC`

	features, err := r.queryMany(ctx, query, containment)
	if err != nil {
		r.log.Error("Failed to find features by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find features for user: %w", err)
	}

	return features, nil
}

func (r *featureRepository) Update(ctx context.Context, f *entity.Feature) error {
	subMenusRaw, assignedRaw, err := encodeFeatureDocs(f)
	if err != nil {
		return err
	}

	query := `
		UPDATE features
		SET title = $2, icon = $3, default_type = $4, default_url = $5,
		    default_sub_menus = $6, assigned_to = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		f.ID,
		f.Title,
		f.Icon,
		f.Default.Type,
		f.Default.URL,
		subMenusRaw,
		assignedRaw,
		f.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update feature", zap.Error(err), zap.String("feature_id", f.ID.String()))
		return fmt.Errorf("failed to update feature: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("feature: %w", ErrNotAffected)
	}

	return nil
}

func (r *featureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete feature", zap.Error(err), zap.String("feature_id", id.String()))
		return fmt.Errorf("failed to delete feature: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("feature: %w", ErrNotAffected)
	}

	r.log.Info("Feature deleted", zap.String("feature_id", id.String()))
	return nil
}

// RemoveUserAssignments pulls userID out of every assignment list.
func (r *featureRepository) RemoveUserAssignments(ctx context.Context, userID uuid.UUID) (int64, error) {
	containment, err := json.Marshal([]map[string]string{{"user": userID.String()}})
	if err != nil {
		return 0, fmt.Errorf("encode containment: %w", err)
	}

	query := `
		UPDATE features
		SET assigned_to = COALESCE((
		        SELECT jsonb_agg(e)
		        FROM jsonb_array_elements(assigned_to) AS e
		        WHERE e->>'user' <> $1
		    ), '[]'::jsonb),
		    updated_at = NOW()
		WHERE assigned_to @> $2
	`

	result, err := r.db.Exec(ctx, query, userID.String(), containment)
	if err != nil {
		r.log.Error("Failed to remove user assignments", zap.Error(err), zap.String("user_id", userID.String()))
		return 0, fmt.Errorf("failed to remove user assignments: %w", err)
	}

	return result.RowsAffected(), nil
}
