package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"insekta-dashboard/internal/data/entity"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/pkg/mailer"

	"github.com/google/uuid"
)

// ==================== FAKE REPOSITORIES ====================

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func contains(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.users {
		if strings.EqualFold(other.Email, u.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[uuid.UUID]*entity.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *fakeUserRepo) filtered(f repository.UserFilter) []*entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Active != nil && u.IsActive != *f.Active {
			continue
		}
		if !contains(f.Search, u.Name, u.Email, u.CompanyName) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeUserRepo) FindAll(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	return page(r.filtered(f), f.Limit, f.Offset), nil
}

func (r *fakeUserRepo) Count(ctx context.Context, f repository.UserFilter) (int64, error) {
	return int64(len(r.filtered(f))), nil
}

func (r *fakeUserRepo) Companies(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, u := range r.filtered(repository.UserFilter{Role: entity.RoleClient}) {
		if u.CompanyName != "" && !seen[u.CompanyName] {
			seen[u.CompanyName] = true
			out = append(out, u.CompanyName)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotAffected
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotAffected
	}
	delete(r.users, id)
	return nil
}

type fakeFeatureRepo struct {
	mu       sync.Mutex
	features map[uuid.UUID]*entity.Feature
	order    []uuid.UUID
}

func newFakeFeatureRepo(features ...*entity.Feature) *fakeFeatureRepo {
	r := &fakeFeatureRepo{features: map[uuid.UUID]*entity.Feature{}}
	for _, f := range features {
		_ = r.Create(context.Background(), f)
	}
	return r
}

func cloneFeature(f *entity.Feature) *entity.Feature {
	cp := *f
	cp.Default = f.Default.Clone()
	cp.AssignedTo = make([]entity.Assignment, len(f.AssignedTo))
	for i, a := range f.AssignedTo {
		cp.AssignedTo[i] = a
		if a.Override != nil {
			o := a.Override.Clone()
			cp.AssignedTo[i].Override = &o
		}
	}
	return &cp
}

func (r *fakeFeatureRepo) Create(ctx context.Context, f *entity.Feature) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.features[f.ID] = cloneFeature(f)
	r.order = append(r.order, f.ID)
	return nil
}

func (r *fakeFeatureRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.features[id]
	if !ok {
		return nil, nil
	}
	return cloneFeature(f), nil
}

func (r *fakeFeatureRepo) all(search string) []*entity.Feature {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Feature
	for _, id := range r.order {
		if f, ok := r.features[id]; ok && contains(search, f.Title) {
			out = append(out, cloneFeature(f))
		}
	}
	return out
}

func (r *fakeFeatureRepo) FindAll(ctx context.Context, f repository.FeatureFilter) ([]*entity.Feature, error) {
	return page(r.all(f.Search), f.Limit, f.Offset), nil
}

func (r *fakeFeatureRepo) Count(ctx context.Context, f repository.FeatureFilter) (int64, error) {
	return int64(len(r.all(f.Search))), nil
}

func (r *fakeFeatureRepo) FindByAssignedUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feature, error) {
	var out []*entity.Feature
	for _, f := range r.all("") {
		if _, _, ok := f.FindAssignment(userID); ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFeatureRepo) Update(ctx context.Context, f *entity.Feature) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.features[f.ID]; !ok {
		return repository.ErrNotAffected
	}
	r.features[f.ID] = cloneFeature(f)
	return nil
}

func (r *fakeFeatureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.features[id]; !ok {
		return repository.ErrNotAffected
	}
	delete(r.features, id)
	return nil
}

func (r *fakeFeatureRepo) RemoveUserAssignments(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, f := range r.features {
		kept := f.AssignedTo[:0]
		for _, a := range f.AssignedTo {
			if a.UserID != userID {
				kept = append(kept, a)
			}
		}
		if len(kept) != len(f.AssignedTo) {
			n++
		}
		f.AssignedTo = kept
	}
	return n, nil
}

type fakeBannerRepo struct {
	mu      sync.Mutex
	banners []*entity.Banner
}

func (r *fakeBannerRepo) filtered(f repository.BannerFilter) []*entity.Banner {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Banner
	for _, b := range r.banners {
		if f.Type != "" && b.Type != f.Type {
			continue
		}
		if f.Active != nil && b.IsActive != *f.Active {
			continue
		}
		if !contains(f.Search, b.Title, b.Content) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *fakeBannerRepo) Create(ctx context.Context, b *entity.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.banners = append(r.banners, &cp)
	return nil
}

func (r *fakeBannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.banners {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBannerRepo) FindAll(ctx context.Context, f repository.BannerFilter) ([]*entity.Banner, error) {
	return page(r.filtered(f), f.Limit, f.Offset), nil
}

func (r *fakeBannerRepo) Count(ctx context.Context, f repository.BannerFilter) (int64, error) {
	return int64(len(r.filtered(f))), nil
}

func (r *fakeBannerRepo) Update(ctx context.Context, b *entity.Banner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, old := range r.banners {
		if old.ID == b.ID {
			cp := *b
			r.banners[i] = &cp
			return nil
		}
	}
	return repository.ErrNotAffected
}

func (r *fakeBannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.banners {
		if b.ID == id {
			r.banners = append(r.banners[:i], r.banners[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotAffected
}

type fakeChartRepo struct {
	mu     sync.Mutex
	charts []*entity.Chart
}

func (r *fakeChartRepo) filtered(f repository.ChartFilter) []*entity.Chart {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Chart
	for _, c := range r.charts {
		if contains(f.Search, c.Title, c.Description) {
			out = append(out, c)
		}
	}
	return out
}

func (r *fakeChartRepo) Create(ctx context.Context, c *entity.Chart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.charts = append(r.charts, &cp)
	return nil
}

func (r *fakeChartRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.charts {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeChartRepo) FindAll(ctx context.Context, f repository.ChartFilter) ([]*entity.Chart, error) {
	return page(r.filtered(f), f.Limit, f.Offset), nil
}

func (r *fakeChartRepo) Count(ctx context.Context, f repository.ChartFilter) (int64, error) {
	return int64(len(r.filtered(f))), nil
}

func (r *fakeChartRepo) Update(ctx context.Context, c *entity.Chart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, old := range r.charts {
		if old.ID == c.ID {
			cp := *c
			r.charts[i] = &cp
			return nil
		}
	}
	return repository.ErrNotAffected
}

func (r *fakeChartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.charts {
		if c.ID == id {
			r.charts = append(r.charts[:i], r.charts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotAffected
}

type fakeTeamRepo struct {
	mu      sync.Mutex
	members []*entity.TeamMember
	// failCreate makes Create return an error
	failCreate bool
}

func (r *fakeTeamRepo) filtered(f repository.TeamFilter) []*entity.TeamMember {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.TeamMember
	for _, m := range r.members {
		if f.Area != "" && m.Area != f.Area {
			continue
		}
		if contains(f.Search, m.Name, m.Area, m.Role, m.Outlets) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Area != out[j].Area {
			return out[i].Area < out[j].Area
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *fakeTeamRepo) Create(ctx context.Context, m *entity.TeamMember) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.members = append(r.members, &cp)
	return nil
}

func (r *fakeTeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTeamRepo) FindAll(ctx context.Context, f repository.TeamFilter) ([]*entity.TeamMember, error) {
	return page(r.filtered(f), f.Limit, f.Offset), nil
}

func (r *fakeTeamRepo) Count(ctx context.Context, f repository.TeamFilter) (int64, error) {
	return int64(len(r.filtered(f))), nil
}

func (r *fakeTeamRepo) Areas(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range r.filtered(repository.TeamFilter{}) {
		if m.Area != "" && !seen[m.Area] {
			seen[m.Area] = true
			out = append(out, m.Area)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(ctx context.Context, m *entity.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, old := range r.members {
		if old.ID == m.ID {
			cp := *m
			r.members[i] = &cp
			return nil
		}
	}
	return repository.ErrNotAffected
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.members {
		if m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotAffected
}

// ==================== FAKE MAILER ====================

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.WelcomeMail
	err  error
}

func (m *fakeMailer) SendWelcome(ctx context.Context, mail mailer.WelcomeMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}

// ==================== FIXTURES ====================

type fixture struct {
	users    *fakeUserRepo
	features *fakeFeatureRepo
	banners  *fakeBannerRepo
	charts   *fakeChartRepo
	teams    *fakeTeamRepo
	repo     *repository.Repository
}

func newFixture() *fixture {
	f := &fixture{
		users:    newFakeUserRepo(),
		features: newFakeFeatureRepo(),
		banners:  &fakeBannerRepo{},
		charts:   &fakeChartRepo{},
		teams:    &fakeTeamRepo{},
	}
	f.repo = &repository.Repository{
		User:    f.users,
		Feature: f.features,
		Banner:  f.banners,
		Chart:   f.charts,
		Team:    f.teams,
	}
	return f
}

func newUser(name string, role entity.UserRole) *entity.User {
	return &entity.User{
		Base:        entity.NewBase(),
		Name:        name,
		Email:       strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Role:        role,
		CompanyName: "PT " + name,
		IsActive:    true,
	}
}
