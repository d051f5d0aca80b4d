package api

import (
	"encoding/json"
	"net/http"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
}

func newContactHandler(content *services.ContentService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// submitContactForm accepts a public visitor message. Validation failures
// come back as the error branch before any store call; on success the form
// clears client-side and shows its acknowledgment.
func (h contactHandler) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ContactFormInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message, err := h.content.SubmitContactForm(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteCreated(w, message)
	}
}
