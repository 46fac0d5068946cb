package usecase

import (
	"context"
	"errors"
	"testing"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteError(t *testing.T) {
	gone := writeError("delete banner", repository.ErrNotAffected)
	assert.ErrorIs(t, gone, ErrNotFound)

	boom := errors.New("connection reset")
	other := writeError("delete banner", boom)
	assert.ErrorIs(t, other, boom)
	assert.NotErrorIs(t, other, ErrNotFound)
}

// racingBannerRepo drops the row right before every write, as a concurrent
// delete between lookup and write would.
type racingBannerRepo struct {
	*fakeBannerRepo
}

func (r racingBannerRepo) Update(ctx context.Context, b *entity.Banner) error {
	_ = r.fakeBannerRepo.Delete(ctx, b.ID)
	return r.fakeBannerRepo.Update(ctx, b)
}

func (r racingBannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = r.fakeBannerRepo.Delete(ctx, id)
	return r.fakeBannerRepo.Delete(ctx, id)
}

func TestBannerWrites_RowGoneAfterLookupIsNotFound(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	svc := NewBannerService(racingBannerRepo{fx.banners}, zap.NewNop())

	created, err := svc.CreateBanner(ctx, &request.BannerRequest{Title: "Promo", Content: "Diskon"}, uuid.New())
	require.NoError(t, err)

	err = svc.DeleteBanner(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err = svc.CreateBanner(ctx, &request.BannerRequest{Title: "Promo 2", Content: "Diskon"}, uuid.New())
	require.NoError(t, err)

	title := "Promo baru"
	_, err = svc.UpdateBanner(ctx, created.ID, &request.BannerUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

// racingFeatureRepo drops the feature right before Delete.
type racingFeatureRepo struct {
	*fakeFeatureRepo
}

func (r racingFeatureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = r.fakeFeatureRepo.Delete(ctx, id)
	return r.fakeFeatureRepo.Delete(ctx, id)
}

func TestDeleteFeature_RowGoneAfterLookupIsNotFound(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	client := newUser("Budi Santoso", entity.RoleClient)
	require.NoError(t, fx.users.Create(ctx, client))

	svc, _ := newFeatureServiceForTest(t, fx)
	created, err := svc.CreateFeature(ctx, &request.FeatureRequest{
		Title:      "Laporan",
		DefaultURL: "https://example.com",
		AssignedTo: []entity.Assignment{{UserID: client.ID}},
	})
	require.NoError(t, err)

	fx.repo.Feature = racingFeatureRepo{fx.features}
	err = svc.DeleteFeature(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
