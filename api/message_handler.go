package api

import (
	"net/http"

	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type messageHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
}

func newMessageHandler(content *services.ContentService) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// MessageCollection represents contact messages with counts. Total is the
// unfiltered count so the admin list can show "N of M messages".
type MessageCollection struct {
	Messages []models.ContactMessage `json:"messages"`
	Showing  int                     `json:"showing"`
	Total    int                     `json:"total"`
}

// getAllMessages returns contact messages newest first, optionally filtered
// by ?search= across name, email, subject and message body.
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.content.ContactMessages()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		filtered := services.SearchMessages(messages, r.URL.Query().Get("search"))

		h.responder.WriteData(w, MessageCollection{
			Messages: filtered,
			Showing:  len(filtered),
			Total:    len(messages),
		})
	}
}

// deleteMessage removes one contact message. The admin UI confirms before
// calling; deletion is immediate and irreversible.
func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.content.DeleteContactMessage(messageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, map[string]string{
			"message": "message deleted successfully",
		})
	}
}
