package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"insekta-dashboard/internal/dto/request"
	"insekta-dashboard/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTeamServiceForTest(t *testing.T, repo *fakeTeamRepo) (TeamService, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, "/uploads")
	require.NoError(t, err)
	return NewTeamService(repo, store, zap.NewNop()), root
}

func TestGetTeams_Pagination(t *testing.T) {
	repo := &fakeTeamRepo{}
	svc, _ := newTeamServiceForTest(t, repo)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := svc.CreateTeam(ctx, &request.TeamRequest{
			Name:  fmt.Sprintf("Teknisi %02d", i),
			Role:  "Technician",
			Phone: "081234567890",
			Area:  "Jakarta",
		}, uuid.Nil)
		require.NoError(t, err)
	}

	resp, err := svc.GetTeams(ctx, &request.TeamListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, Limit: 5},
	})
	require.NoError(t, err)

	require.Len(t, resp.Data, 5)
	assert.Equal(t, "Teknisi 06", resp.Data[0].Name)
	assert.Equal(t, "Teknisi 10", resp.Data[4].Name)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(12), resp.Pagination.TotalData)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
}

func TestGetTeams_EmptyHasOnePage(t *testing.T) {
	svc, _ := newTeamServiceForTest(t, &fakeTeamRepo{})

	resp, err := svc.GetTeams(context.Background(), &request.TeamListRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
	assert.Equal(t, 10, resp.Pagination.Limit)
}

func TestCreateTeam_Validation(t *testing.T) {
	svc, _ := newTeamServiceForTest(t, &fakeTeamRepo{})

	_, err := svc.CreateTeam(context.Background(), &request.TeamRequest{
		Name: "Andi", Role: "Supervisor", Phone: "12345", Area: "Bandung",
	}, uuid.Nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Phone")
}

func TestCreateTeam_PhotoRemovedWhenInsertFails(t *testing.T) {
	repo := &fakeTeamRepo{failCreate: true}
	svc, root := newTeamServiceForTest(t, repo)

	_, err := svc.CreateTeam(context.Background(), &request.TeamRequest{
		Name: "Andi", Role: "Supervisor", Phone: "+6281234567890", Area: "Bandung",
		Photo: &request.FileUpload{Filename: "andi.png", Data: pngBytes(t, 300, 500)},
	}, uuid.Nil)
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "teams"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateTeam_ReplacesPhotoAndAreas(t *testing.T) {
	svc, root := newTeamServiceForTest(t, &fakeTeamRepo{})
	ctx := context.Background()

	created, err := svc.CreateTeam(ctx, &request.TeamRequest{
		Name: "Rina", Role: "Technician", Phone: "085712345678", Area: "Surabaya",
		Photo: &request.FileUpload{Data: pngBytes(t, 40, 40)},
	}, uuid.Nil)
	require.NoError(t, err)
	_, err = svc.CreateTeam(ctx, &request.TeamRequest{
		Name: "Joko", Role: "Technician", Phone: "085712345679", Area: "Bali",
	}, uuid.Nil)
	require.NoError(t, err)

	updated, err := svc.UpdateTeam(ctx, created.ID, &request.TeamUpdateRequest{
		Photo: &request.FileUpload{Data: pngBytes(t, 50, 20)},
	})
	require.NoError(t, err)
	assert.NoFileExists(t, refPath(root, created.Photo))
	assert.FileExists(t, refPath(root, updated.Photo))

	areas, err := svc.GetAreas(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bali", "Surabaya"}, areas)

	require.NoError(t, svc.DeleteTeam(ctx, created.ID))
	assert.NoFileExists(t, refPath(root, updated.Photo))
}
