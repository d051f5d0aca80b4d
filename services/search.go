package services

import (
	"strings"

	"github.com/alexmorgan-dev/portfolio-site-backend/models"
)

// SearchMessages filters messages by a case-insensitive substring match
// over name, email, subject and message body. An empty term returns the
// full list unchanged.
func SearchMessages(messages []models.ContactMessage, term string) []models.ContactMessage {
	if term == "" {
		return messages
	}

	needle := strings.ToLower(term)
	filtered := make([]models.ContactMessage, 0, len(messages))
	for _, msg := range messages {
		if strings.Contains(strings.ToLower(msg.Name), needle) ||
			strings.Contains(strings.ToLower(msg.Email), needle) ||
			strings.Contains(strings.ToLower(msg.Subject), needle) ||
			strings.Contains(strings.ToLower(msg.Message), needle) {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}
