package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexmorgan-dev/portfolio-site-backend/config"
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/alexmorgan-dev/portfolio-site-backend/portfolio"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const testAdminPassword = "test-admin-secret"

// In-memory stores backing the full router under test.

type memProfileStore struct {
	profile *models.PortfolioProfile
}

func (s *memProfileStore) Find() (*models.PortfolioProfile, error) {
	if s.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.profile, nil
}

func (s *memProfileStore) UpdateSection(section string, data datatypes.JSON) error {
	if s.profile == nil {
		return gorm.ErrRecordNotFound
	}
	switch section {
	case models.SectionHero:
		s.profile.Hero = data
	case models.SectionAbout:
		s.profile.About = data
	case models.SectionContact:
		s.profile.Contact = data
	case models.SectionSocial:
		s.profile.Social = data
	}
	return nil
}

type memProjectStore struct {
	projects []models.Project
}

func (s *memProjectStore) FindAll() ([]models.Project, error) {
	return s.projects, nil
}

func (s *memProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memProjectStore) Add(project *models.Project) error {
	project.ID = uuid.New()
	project.CreatedAt = time.Now()
	s.projects = append(s.projects, *project)
	return nil
}

func (s *memProjectStore) Update(project *models.Project) error {
	for i := range s.projects {
		if s.projects[i].ID == project.ID {
			s.projects[i] = *project
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *memProjectStore) Delete(id uuid.UUID) error {
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSkillStore struct {
	skills []models.SkillGroup
}

func (s *memSkillStore) FindAll() ([]models.SkillGroup, error) {
	return s.skills, nil
}

func (s *memSkillStore) FindByID(id uuid.UUID) (*models.SkillGroup, error) {
	for i := range s.skills {
		if s.skills[i].ID == id {
			return &s.skills[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memSkillStore) Add(skill *models.SkillGroup) error {
	skill.ID = uuid.New()
	s.skills = append(s.skills, *skill)
	return nil
}

func (s *memSkillStore) Update(skill *models.SkillGroup) error {
	for i := range s.skills {
		if s.skills[i].ID == skill.ID {
			s.skills[i] = *skill
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *memSkillStore) Delete(id uuid.UUID) error {
	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return nil
}

type memMessageStore struct {
	messages []models.ContactMessage
}

func (s *memMessageStore) FindAll() ([]models.ContactMessage, error) {
	return s.messages, nil
}

func (s *memMessageStore) Add(message *models.ContactMessage) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	s.messages = append(s.messages, *message)
	return nil
}

func (s *memMessageStore) Delete(id uuid.UUID) error {
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

type testStores struct {
	profiles *memProfileStore
	projects *memProjectStore
	skills   *memSkillStore
	messages *memMessageStore
}

func newTestRouter(t *testing.T) (*chi.Mux, *testStores) {
	t.Helper()

	stores := &testStores{
		profiles: &memProfileStore{profile: &models.PortfolioProfile{
			ID:   models.ProfileID,
			Hero: datatypes.JSON(`{"name":"ALEX MORGAN","title":"Full-Stack Web Developer","description":"Crafting digital experiences.","cta":"View Projects"}`),
		}},
		projects: &memProjectStore{},
		skills:   &memSkillStore{},
		messages: &memMessageStore{},
	}

	content := services.NewContentService(stores.profiles, stores.projects, stores.skills, stores.messages, nil)
	provider := portfolio.NewProvider(content)
	require.NoError(t, provider.Load())

	router, err := newRouter(content, provider,
		withConfig(map[string]string{config.KeyAdminPassword: testAdminPassword}),
		withStartupTime(time.Now()),
	)
	require.NoError(t, err)

	return router, stores
}

func doRequest(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the two response branches for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Kind    string          `json:"kind"`
	Field   string          `json:"field"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func loginAs(t *testing.T, router http.Handler, password string) string {
	t.Helper()

	rec := doRequest(router, http.MethodPost, "/admin/login", `{"password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
