package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 20, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newFeatureServiceForTest(t *testing.T, fx *fixture) (FeatureService, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, "/uploads")
	require.NoError(t, err)
	return NewFeatureService(fx.repo, store, zap.NewNop()), root
}

func refPath(root, ref string) string {
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(ref, "/uploads/")))
}

func TestDeleteFeature_RemovesIcon(t *testing.T) {
	client := newUser("Client", entity.RoleClient)
	fx := newFixture()
	fx.users = newFakeUserRepo(client)
	fx.repo.User = fx.users
	svc, root := newFeatureServiceForTest(t, fx)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, &request.FeatureRequest{
		Title:      "Dashboard Hama",
		DefaultURL: "https://lookerstudio.google.com/a",
		AssignedTo: []entity.Assignment{{UserID: client.ID}},
		Icon:       &request.FileUpload{Filename: "icon.png", Data: pngBytes(t, 64, 32)},
	})
	require.NoError(t, err)
	require.NotEqual(t, DefaultFeatureIcon, created.Icon)

	iconFile := refPath(root, created.Icon)
	assert.FileExists(t, iconFile)

	require.NoError(t, svc.DeleteFeature(ctx, created.ID))
	assert.NoFileExists(t, iconFile)

	_, err = svc.GetFeatureByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFeature_MissingIconFileIsIgnored(t *testing.T) {
	client := newUser("Client", entity.RoleClient)
	fx := newFixture()
	fx.users = newFakeUserRepo(client)
	fx.repo.User = fx.users
	svc, root := newFeatureServiceForTest(t, fx)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, &request.FeatureRequest{
		Title:      "Grafik",
		DefaultURL: "https://x.example",
		AssignedTo: []entity.Assignment{{UserID: client.ID}},
		Icon:       &request.FileUpload{Filename: "icon.png", Data: pngBytes(t, 10, 10)},
	})
	require.NoError(t, err)

	require.NoError(t, os.Remove(refPath(root, created.Icon)))
	assert.NoError(t, svc.DeleteFeature(ctx, created.ID))
}

func TestDeleteFeature_KeepsDefaultIcon(t *testing.T) {
	client := newUser("Client", entity.RoleClient)
	fx := newFixture()
	fx.users = newFakeUserRepo(client)
	fx.repo.User = fx.users
	svc, root := newFeatureServiceForTest(t, fx)
	ctx := context.Background()

	defaultFile := refPath(root, DefaultFeatureIcon)
	require.NoError(t, os.MkdirAll(filepath.Dir(defaultFile), 0755))
	require.NoError(t, os.WriteFile(defaultFile, []byte("png"), 0644))

	created, err := svc.CreateFeature(ctx, &request.FeatureRequest{
		Title:      "Tanpa Ikon",
		DefaultURL: "https://x.example",
		AssignedTo: []entity.Assignment{{UserID: client.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultFeatureIcon, created.Icon)

	require.NoError(t, svc.DeleteFeature(ctx, created.ID))
	assert.FileExists(t, defaultFile)
}

func TestCreateFeature_UnknownUser(t *testing.T) {
	svc, _ := newFeatureServiceForTest(t, newFixture())

	_, err := svc.CreateFeature(context.Background(), &request.FeatureRequest{
		Title:      "X",
		AssignedTo: []entity.Assignment{{UserID: uuid.New()}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateFeature_RejectsNonImage(t *testing.T) {
	client := newUser("Client", entity.RoleClient)
	fx := newFixture()
	fx.users = newFakeUserRepo(client)
	fx.repo.User = fx.users
	svc, _ := newFeatureServiceForTest(t, fx)

	_, err := svc.CreateFeature(context.Background(), &request.FeatureRequest{
		Title:      "X",
		AssignedTo: []entity.Assignment{{UserID: client.ID}},
		Icon:       &request.FileUpload{Filename: "evil.png", Data: []byte("%PDF-1.4 not an image")},
	})
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestGetAdminFeatures_SkipsDeletedUsersAndJoinsCompany(t *testing.T) {
	live := newUser("Live", entity.RoleClient)
	gone := uuid.New()

	f := sampleFeature(
		entity.Assignment{UserID: gone, CompanyName: "PT Lama"},
		entity.Assignment{UserID: live.ID, CompanyName: "PT Snapshot"},
	)

	fx := newFixture()
	fx.users = newFakeUserRepo(live)
	fx.repo.User = fx.users
	fx.features = newFakeFeatureRepo(f)
	fx.repo.Feature = fx.features
	svc, _ := newFeatureServiceForTest(t, fx)

	resp, err := svc.GetAdminFeatures(context.Background(), &request.FeatureListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	assigned := resp.Data[0].AssignedTo
	require.Len(t, assigned, 1)
	assert.Equal(t, live.ID.String(), assigned[0].User.ID)
	assert.Equal(t, live.CompanyName, assigned[0].CompanyName)
	assert.Equal(t, int64(1), resp.Pagination.TotalData)
}

func TestSetCustom_PersistsReset(t *testing.T) {
	client := newUser("Client", entity.RoleClient)
	old := entity.LinkConfig{Type: entity.LinkSingle, URL: "https://custom.example", SubMenus: []entity.SubMenu{}}
	f := sampleFeature(entity.Assignment{UserID: client.ID, Override: &old})

	fx := newFixture()
	fx.users = newFakeUserRepo(client)
	fx.repo.User = fx.users
	fx.features = newFakeFeatureRepo(f)
	fx.repo.Feature = fx.features
	svc, _ := newFeatureServiceForTest(t, fx)
	ctx := context.Background()

	_, err := svc.SetCustom(ctx, f.ID.String(), client.ID.String(), false)
	require.NoError(t, err)

	mine, err := svc.GetMyFeatures(ctx, client.ID.String())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.Default.URL, mine[0].URL)

	resp, err := svc.SetCustom(ctx, f.ID.String(), client.ID.String(), true)
	require.NoError(t, err)
	require.Len(t, resp.AssignedTo, 1)
	assert.True(t, resp.AssignedTo[0].IsCustom)
	assert.Equal(t, "", resp.AssignedTo[0].URL)

	_, err = svc.SetCustom(ctx, f.ID.String(), uuid.NewString(), true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFeature_ReplacesIcon(t *testing.T) {
	client := newUser("Client", entity.RoleClient)
	fx := newFixture()
	fx.users = newFakeUserRepo(client)
	fx.repo.User = fx.users
	svc, root := newFeatureServiceForTest(t, fx)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, &request.FeatureRequest{
		Title:      "Ikon",
		DefaultURL: "https://x.example",
		AssignedTo: []entity.Assignment{{UserID: client.ID}},
		Icon:       &request.FileUpload{Data: pngBytes(t, 20, 20)},
	})
	require.NoError(t, err)
	first := refPath(root, created.Icon)

	title := "Ikon Baru"
	updated, err := svc.UpdateFeature(ctx, created.ID, &request.FeatureUpdateRequest{
		Title: &title,
		Icon:  &request.FileUpload{Data: pngBytes(t, 30, 10)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ikon Baru", updated.Title)
	assert.NotEqual(t, created.Icon, updated.Icon)
	assert.NoFileExists(t, first)
	assert.FileExists(t, refPath(root, updated.Icon))
}
