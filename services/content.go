package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Store interfaces the content service reads and writes through. The
// database package provides the gorm-backed implementations; tests provide
// fakes.

type ProfileStore interface {
	Find() (*models.PortfolioProfile, error)
	UpdateSection(section string, data datatypes.JSON) error
}

type ProjectStore interface {
	FindAll() ([]models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type SkillStore interface {
	FindAll() ([]models.SkillGroup, error)
	FindByID(id uuid.UUID) (*models.SkillGroup, error)
	Add(skill *models.SkillGroup) error
	Update(skill *models.SkillGroup) error
	Delete(id uuid.UUID) error
}

type MessageStore interface {
	FindAll() ([]models.ContactMessage, error)
	Add(message *models.ContactMessage) error
	Delete(id uuid.UUID) error
}

// ContentService is the single boundary between UI intent and the store.
// Every lower-level failure is converted to an *errs.ApiErr here; nothing
// below this layer reaches a handler uncaught.
type ContentService struct {
	logger   zerolog.Logger
	profiles ProfileStore
	projects ProjectStore
	skills   SkillStore
	messages MessageStore
	notifier *Notifier
}

func NewContentService(profiles ProfileStore, projects ProjectStore, skills SkillStore, messages MessageStore, notifier *Notifier) *ContentService {
	logger := log.With().Str("serviceName", "contentService").Logger()

	return &ContentService{
		logger:   logger,
		profiles: profiles,
		projects: projects,
		skills:   skills,
		messages: messages,
		notifier: notifier,
	}
}

// ContactFormInput is a public contact form submission.
type ContactFormInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactForm validates and persists a visitor message. All four
// fields are required; validation failures are reported before any store
// call is made. Field values are trimmed before persistence.
func (s *ContentService) SubmitContactForm(input ContactFormInput) (*models.ContactMessage, error) {
	message := models.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	required := []struct {
		field string
		value string
	}{
		{"name", message.Name},
		{"email", message.Email},
		{"subject", message.Subject},
		{"message", message.Message},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, errs.NewMissingRequiredFieldError(r.field)
		}
	}

	if err := s.messages.Add(&message); err != nil {
		return nil, errs.NewStoreError("insert", "contact message", err)
	}

	if s.notifier != nil {
		go s.notifier.MessageReceived(message)
	}

	return &message, nil
}

// ContactMessages returns all messages, newest first.
func (s *ContentService) ContactMessages() ([]models.ContactMessage, error) {
	messages, err := s.messages.FindAll()
	if err != nil {
		return nil, errs.NewStoreError("find", "contact messages", err)
	}
	return messages, nil
}

// DeleteContactMessage removes one message by id.
func (s *ContentService) DeleteContactMessage(id uuid.UUID) error {
	if err := s.messages.Delete(id); err != nil {
		return errs.NewStoreError("delete", "contact message", err)
	}
	return nil
}

// PortfolioSections fetches and decodes the singleton profile row. An
// absent row is a NotFound error requiring external remediation; the row is
// never auto-created.
func (s *ContentService) PortfolioSections() (*models.ProfileSections, error) {
	profile, err := s.profiles.Find()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("portfolio profile")
		}
		return nil, errs.NewStoreError("find", "portfolio profile", err)
	}

	sections, err := profile.Sections()
	if err != nil {
		return nil, errs.NewStoreError("decode", "portfolio profile", err)
	}
	return sections, nil
}

// UpdatePortfolioSection replaces one of the four profile sub-objects
// wholesale. Partial updates are not supported; callers always send the
// full sub-object.
func (s *ContentService) UpdatePortfolioSection(section string, payload json.RawMessage) error {
	blob, err := models.DecodeSection(section, payload)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "unknown portfolio section"):
			return errs.NewInvalidFieldError("section", err.Error())
		default:
			return errs.NewInvalidJSONError(err)
		}
	}

	if err := s.profiles.UpdateSection(section, blob); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("portfolio profile")
		}
		return errs.NewStoreError("update", "portfolio section", err)
	}

	s.logger.Info().Str("section", section).Msg("portfolio section updated")
	return nil
}

// Projects returns all projects ordered by identifier ascending.
func (s *ContentService) Projects() ([]models.Project, error) {
	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, errs.NewStoreError("find", "projects", err)
	}
	return projects, nil
}

// ProjectByID returns one project.
func (s *ContentService) ProjectByID(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewStoreError("find", "project", err)
	}
	return project, nil
}

// CreateProject persists a draft project. The id is store-assigned; any id
// the client sent is discarded.
func (s *ContentService) CreateProject(project *models.Project) (*models.Project, error) {
	normalizeProject(project)
	if project.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	project.ID = uuid.Nil
	if err := s.projects.Add(project); err != nil {
		return nil, errs.NewStoreError("create", "project", err)
	}
	return project, nil
}

// UpdateProject replaces an existing project's fields.
func (s *ContentService) UpdateProject(id uuid.UUID, project *models.Project) (*models.Project, error) {
	if _, err := s.ProjectByID(id); err != nil {
		return nil, err
	}

	normalizeProject(project)
	if project.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	project.ID = id
	if err := s.projects.Update(project); err != nil {
		return nil, errs.NewStoreError("update", "project", err)
	}
	return project, nil
}

// DeleteProject removes one project by id.
func (s *ContentService) DeleteProject(id uuid.UUID) error {
	if _, err := s.ProjectByID(id); err != nil {
		return err
	}
	if err := s.projects.Delete(id); err != nil {
		return errs.NewStoreError("delete", "project", err)
	}
	return nil
}

// Skills returns all skill groups ordered by identifier ascending.
func (s *ContentService) Skills() ([]models.SkillGroup, error) {
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, errs.NewStoreError("find", "skills", err)
	}
	return skills, nil
}

// CreateSkill persists a draft skill group.
func (s *ContentService) CreateSkill(skill *models.SkillGroup) (*models.SkillGroup, error) {
	normalizeSkill(skill)
	if skill.Category == "" {
		return nil, errs.NewMissingRequiredFieldError("category")
	}

	skill.ID = uuid.Nil
	if err := s.skills.Add(skill); err != nil {
		return nil, errs.NewStoreError("create", "skill", err)
	}
	return skill, nil
}

// UpdateSkill replaces an existing skill group's fields.
func (s *ContentService) UpdateSkill(id uuid.UUID, skill *models.SkillGroup) (*models.SkillGroup, error) {
	if _, err := s.skills.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("skill")
		}
		return nil, errs.NewStoreError("find", "skill", err)
	}

	normalizeSkill(skill)
	if skill.Category == "" {
		return nil, errs.NewMissingRequiredFieldError("category")
	}

	skill.ID = id
	if err := s.skills.Update(skill); err != nil {
		return nil, errs.NewStoreError("update", "skill", err)
	}
	return skill, nil
}

// DeleteSkill removes one skill group by id.
func (s *ContentService) DeleteSkill(id uuid.UUID) error {
	if _, err := s.skills.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("skill")
		}
		return errs.NewStoreError("find", "skill", err)
	}
	if err := s.skills.Delete(id); err != nil {
		return errs.NewStoreError("delete", "skill", err)
	}
	return nil
}

// SplitTechnologies turns the admin form's comma-separated input into a
// clean list: entries trimmed, blanks dropped.
func SplitTechnologies(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cleanTechnologies(list []string) []string {
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeProject(p *models.Project) {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	p.Image = strings.TrimSpace(p.Image)
	p.Link = strings.TrimSpace(p.Link)
	p.Technologies = cleanTechnologies(p.Technologies)
}

func normalizeSkill(sk *models.SkillGroup) {
	sk.Category = strings.TrimSpace(sk.Category)
	sk.Technologies = cleanTechnologies(sk.Technologies)
}
