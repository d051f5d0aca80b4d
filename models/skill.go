package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillGroup is one labelled group of technologies on the skills section,
// e.g. {"Frontend", ["React", "TypeScript"]}.
type SkillGroup struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Category     string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"type:jsonb"`
}

func (SkillGroup) TableName() string {
	return "skills"
}
