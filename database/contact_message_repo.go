package database

import (
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *ContactMessageRepo) FindAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

// Add inserts a new contact message. The id and created_at are assigned by
// the store.
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// Delete removes a contact message by id. Messages are immutable once
// created; delete is the only admin mutation.
func (r *ContactMessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMessage{}, "id = ?", id).Error
}
