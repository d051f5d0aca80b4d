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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
	provider  *portfolio.Provider
}

func newSkillHandler(content *services.ContentService, provider *portfolio.Provider) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		provider:  provider,
	}
}

// SkillCollection represents a list of skill groups with a total count
type SkillCollection struct {
	Skills []models.SkillGroup `json:"skills"`
	Total  int                 `json:"total"`
}

// getAllSkills retrieves all skill groups
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.content.Skills()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, SkillCollection{
			Skills: skills,
			Total:  len(skills),
		})
	}
}

// createSkill persists a draft skill group coming from the admin "Add" form.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill, ok := h.decodeSkill(w, r)
		if !ok {
			return
		}

		created, err := h.content.CreateSkill(skill)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshSnapshot()
		h.responder.WriteCreated(w, created)
	}
}

// updateSkill updates an existing skill group
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, ok := h.decodeSkill(w, r)
		if !ok {
			return
		}

		updated, err := h.content.UpdateSkill(skillID, skill)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshSnapshot()
		h.responder.WriteData(w, updated)
	}
}

// deleteSkill deletes a skill group by ID
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.content.DeleteSkill(skillID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshSnapshot()
		h.responder.WriteData(w, map[string]string{
			"message": "skill deleted successfully",
		})
	}
}

func (h skillHandler) decodeSkill(w http.ResponseWriter, r *http.Request) (*models.SkillGroup, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return nil, false
	}

	var skill models.SkillGroup
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&skill); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skill request body")
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return nil, false
	}
	return &skill, true
}

func (h skillHandler) refreshSnapshot() {
	if err := h.provider.Refresh(); err != nil {
		h.logger.Warn().Err(err).Msg("snapshot refresh failed after skill mutation")
	}
}
