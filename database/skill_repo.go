package database

import (
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skill groups ordered by identifier ascending.
func (r *SkillRepo) FindAll() ([]models.SkillGroup, error) {
	var skills []models.SkillGroup
	err := r.db.Order("id asc").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill group by its ID
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.SkillGroup, error) {
	var skill models.SkillGroup
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill group into the database
func (r *SkillRepo) Add(skill *models.SkillGroup) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill group in the database
func (r *SkillRepo) Update(skill *models.SkillGroup) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill group from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SkillGroup{}, "id = ?", id).Error
}
