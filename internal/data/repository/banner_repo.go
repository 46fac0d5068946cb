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

type BannerFilter struct {
	Search string
	Type   entity.BannerType
	Active *bool
	Limit  int
	Offset int
}

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	FindAll(ctx context.Context, filter BannerFilter) ([]*entity.Banner, error)
	Count(ctx context.Context, filter BannerFilter) (int64, error)
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBannerRepository(db database.PgxIface, log *zap.Logger) BannerRepository {
	return &bannerRepository{
		db:  db,
		log: log.With(zap.String("repository", "banner")),
	}
}

const bannerColumns = `id, title, content, type, link_url, is_active, created_by, created_at, updated_at`

func scanBanner(row pgx.Row) (*entity.Banner, error) {
	var b entity.Banner
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Content,
		&b.Type,
		&b.LinkURL,
		&b.IsActive,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func bannerWhere(filter BannerFilter) *whereClause {
	var w whereClause
	w.addSearch(filter.Search, "title", "content")
	if filter.Type != "" {
		w.add("type = ?", filter.Type)
	}
	if filter.Active != nil {
		w.add("is_active = ?", *filter.Active)
	}
	return &w
}

func (r *bannerRepository) Create(ctx context.Context, b *entity.Banner) error {
	query := `
		INSERT INTO banners (id, title, content, type, link_url, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.Content, b.Type, b.LinkURL, b.IsActive, b.CreatedBy, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create banner", zap.Error(err), zap.String("title", b.Title))
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

func (r *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	b, err := scanBanner(r.db.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find banner by ID", zap.Error(err), zap.String("banner_id", id.String()))
		return nil, fmt.Errorf("failed to find banner: %w", err)
	}
	return b, nil
}

func (r *bannerRepository) FindAll(ctx context.Context, filter BannerFilter) ([]*entity.Banner, error) {
	w := bannerWhere(filter)
	suffix, args := w.page(filter.Limit, filter.Offset)
	query := `SELECT ` + bannerColumns + ` FROM banners` + w.String() + ` ORDER BY created_at DESC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find banners", zap.Error(err))
		return nil, fmt.Errorf("failed to find banners: %w", err)
	}
	defer rows.Close()

	banners := []*entity.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			r.log.Error("Failed to scan banner row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return banners, nil
}

func (r *bannerRepository) Count(ctx context.Context, filter BannerFilter) (int64, error) {
	w := bannerWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM banners`+w.String(), w.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count banners", zap.Error(err))
		return 0, fmt.Errorf("failed to count banners: %w", err)
	}
	return total, nil
}

func (r *bannerRepository) Update(ctx context.Context, b *entity.Banner) error {
	query := `
		UPDATE banners
		SET title = $2, content = $3, type = $4, link_url = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, b.ID, b.Title, b.Content, b.Type, b.LinkURL, b.IsActive, b.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update banner", zap.Error(err), zap.String("banner_id", b.ID.String()))
		return fmt.Errorf("failed to update banner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("banner: %w", ErrNotAffected)
	}
	return nil
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete banner", zap.Error(err), zap.String("banner_id", id.String()))
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("banner: %w", ErrNotAffected)
	}
	return nil
}
