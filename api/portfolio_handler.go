package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/alexmorgan-dev/portfolio-site-backend/portfolio"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
	provider  *portfolio.Provider
}

func newPortfolioHandler(content *services.ContentService, provider *portfolio.Provider) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		provider:  provider,
	}
}

// portfolioView is what the public page renders from: the merged snapshot
// plus a loading flag. While loading is true the snapshot is nil and the
// page shows its neutral state.
type portfolioView struct {
	Loading bool                `json:"loading"`
	Data    *portfolio.Snapshot `json:"data"`
}

// getPortfolio serves the shared snapshot. A failed load blocks the whole
// page with the stored error; individual missing sections come through as
// nulls inside the snapshot and render as nothing.
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, loading, err := h.provider.Snapshot()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, portfolioView{
			Loading: loading,
			Data:    snapshot,
		})
	}
}

// updateSection replaces one of the hero/about/contact/social sub-objects
// wholesale and refreshes the shared snapshot so dependents observe the
// change without a page reload.
func (h portfolioHandler) updateSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		if section == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing section"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		if err := h.content.UpdatePortfolioSection(section, json.RawMessage(bodyBytes)); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.provider.Refresh(); err != nil {
			h.logger.Warn().Err(err).Msg("snapshot refresh failed after section update")
		}

		h.responder.WriteData(w, map[string]string{
			"message": section + " section updated successfully",
		})
	}
}
