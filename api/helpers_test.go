package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mbriand/portfolio-backend/config"
	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/models"
	"github.com/mbriand/portfolio-backend/services"
)

const testAdminToken = "test-admin-token"

// In-memory repositories backing the router under test.

type fakeTechnologyRepo struct {
	items map[uuid.UUID]*models.Technology
}

func (f *fakeTechnologyRepo) FindAll() ([]*models.Technology, error) {
	all := make([]*models.Technology, 0, len(f.items))
	for _, t := range f.items {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTechnologyRepo) FindByID(id uuid.UUID) (*models.Technology, error) {
	t, ok := f.items[id]
	if !ok {
		return nil, errs.NewNotFound("technology")
	}
	return t, nil
}

func (f *fakeTechnologyRepo) Add(t *models.Technology) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.items[t.ID] = t
	return nil
}

func (f *fakeTechnologyRepo) Update(t *models.Technology) error {
	if _, ok := f.items[t.ID]; !ok {
		return errs.NewNotFound("technology")
	}
	f.items[t.ID] = t
	return nil
}

func (f *fakeTechnologyRepo) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeSkillRepo struct {
	items map[uuid.UUID]*models.Skill
}

func (f *fakeSkillRepo) FindAll() ([]*models.Skill, error) {
	all := make([]*models.Skill, 0, len(f.items))
	for _, s := range f.items {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeSkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, errs.NewNotFound("skill")
	}
	return s, nil
}

func (f *fakeSkillRepo) Add(s *models.Skill) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.items[s.ID] = s
	return nil
}

func (f *fakeSkillRepo) Update(s *models.Skill) error {
	if _, ok := f.items[s.ID]; !ok {
		return errs.NewNotFound("skill")
	}
	f.items[s.ID] = s
	return nil
}

func (f *fakeSkillRepo) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeProjectRepo struct {
	items map[uuid.UUID]*models.Project
}

func (f *fakeProjectRepo) FindAll() ([]*models.Project, error) {
	all := make([]*models.Project, 0, len(f.items))
	for _, p := range f.items {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, errs.NewNotFound("project")
	}
	return p, nil
}

func (f *fakeProjectRepo) Add(p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.items[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Update(p *models.Project) error {
	if _, ok := f.items[p.ID]; !ok {
		return errs.NewNotFound("project")
	}
	f.items[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) ReplaceTechnologies(p *models.Project, technologies []models.Technology) error {
	stored, ok := f.items[p.ID]
	if !ok {
		return errs.NewNotFound("project")
	}
	stored.Technologies = technologies
	p.Technologies = technologies
	return nil
}

func (f *fakeProjectRepo) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeReviewRepo struct {
	items map[uuid.UUID]*models.Review
}

func (f *fakeReviewRepo) FindAll() ([]*models.Review, error) {
	all := make([]*models.Review, 0, len(f.items))
	for _, r := range f.items {
		all = append(all, r)
	}
	return all, nil
}

func (f *fakeReviewRepo) FindModified() ([]*models.Review, error) {
	modified := make([]*models.Review, 0)
	for _, r := range f.items {
		if r.Modified {
			modified = append(modified, r)
		}
	}
	return modified, nil
}

func (f *fakeReviewRepo) FindByID(id uuid.UUID) (*models.Review, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, errs.NewNotFound("review")
	}
	return r, nil
}

func (f *fakeReviewRepo) FindByUpdateCode(code string) (*models.Review, error) {
	for _, r := range f.items {
		if r.UpdateCode == code {
			return r, nil
		}
	}
	return nil, errs.NewNotFound("review")
}

func (f *fakeReviewRepo) FindByProjectID(projectID uuid.UUID) (*models.Review, error) {
	for _, r := range f.items {
		if r.ProjectID != nil && *r.ProjectID == projectID {
			return r, nil
		}
	}
	return nil, errs.NewNotFound("review")
}

func (f *fakeReviewRepo) Add(r *models.Review) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.items[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) Update(r *models.Review) error {
	if _, ok := f.items[r.ID]; !ok {
		return errs.NewNotFound("review")
	}
	f.items[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) Delete(id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeMediaStore struct {
	releases []string
}

func (f *fakeMediaStore) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	return fmt.Sprintf("https://media.test/%s", key), nil
}

func (f *fakeMediaStore) Release(_ context.Context, ref string) error {
	f.releases = append(f.releases, ref)
	return nil
}

type fakeMailer struct {
	subjects []string
	bodies   []string
}

func (f *fakeMailer) Send(subject, body string, _ []string) error {
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	return nil
}

// routerFixture wires the real router over in-memory collaborators.
type routerFixture struct {
	technologies *fakeTechnologyRepo
	skills       *fakeSkillRepo
	projects     *fakeProjectRepo
	reviews      *fakeReviewRepo
	media        *fakeMediaStore
	mailer       *fakeMailer
	content      *services.Content
	router       *chi.Mux
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		technologies: &fakeTechnologyRepo{items: make(map[uuid.UUID]*models.Technology)},
		skills:       &fakeSkillRepo{items: make(map[uuid.UUID]*models.Skill)},
		projects:     &fakeProjectRepo{items: make(map[uuid.UUID]*models.Project)},
		reviews:      &fakeReviewRepo{items: make(map[uuid.UUID]*models.Review)},
		media:        &fakeMediaStore{},
		mailer:       &fakeMailer{},
	}
	f.content = services.NewContent(
		f.technologies, f.skills, f.projects, f.reviews,
		f.media, f.mailer, "owner@example.com")

	cfg := &config.Config{
		AdminToken:      testAdminToken,
		AcceptedOrigins: []string{"*"},
	}
	f.router = newRouter(cfg, f.content)
	return f
}

// do performs a request against the fixture's router. A non-empty token is
// sent as a "Token" Authorization header.
func (f *routerFixture) do(t *testing.T, method, path, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func (f *routerFixture) doRequest(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}
