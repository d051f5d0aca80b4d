package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project categories the public site offers as filter values. The category
// column itself is an open string set; these are just the canonical filters.
const (
	CategoryAll       = "All"
	CategoryFullStack = "Full-Stack"
	CategoryFrontend  = "Frontend"
	CategoryBackend   = "Backend"
)

// Project represents a portfolio project card.
type Project struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Category     string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"type:jsonb"`
	Image        string                      `json:"image" db:"image" gorm:"type:text"`
	Link         string                      `json:"link" db:"link" gorm:"type:text"`
	Featured     bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt    time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string {
	return "projects"
}
