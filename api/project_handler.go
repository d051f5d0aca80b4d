package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/alexmorgan-dev/portfolio-site-backend/portfolio"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
	"github.com/alexmorgan-dev/portfolio-site-backend/site"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
	provider  *portfolio.Provider
}

func newProjectHandler(content *services.ContentService, provider *portfolio.Provider) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		provider:  provider,
	}
}

// ProjectCollection represents a list of projects with a total count
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// getAllProjects retrieves all projects, optionally narrowed to one
// category via ?category=. "All" (or no parameter) returns everything.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.content.Projects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if category := r.URL.Query().Get("category"); category != "" {
			projects = site.FilterByCategory(projects, category)
		}

		h.responder.WriteData(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.content.ProjectByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, project)
	}
}

// createProject persists a draft project coming from the admin "Add" form.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		created, err := h.content.CreateProject(&project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshSnapshot()
		h.responder.WriteCreated(w, created)
	}
}

// updateProject updates an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.content.UpdateProject(projectID, &project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshSnapshot()
		h.responder.WriteData(w, updated)
	}
}

// deleteProject deletes a project by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.content.DeleteProject(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshSnapshot()
		h.responder.WriteData(w, map[string]string{
			"message": "project deleted successfully",
		})
	}
}

func (h projectHandler) refreshSnapshot() {
	if err := h.provider.Refresh(); err != nil {
		h.logger.Warn().Err(err).Msg("snapshot refresh failed after project mutation")
	}
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
