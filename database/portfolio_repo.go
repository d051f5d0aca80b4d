package database

import (
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db}
}

// Find returns the singleton portfolio row.
func (r *PortfolioRepo) Find() (*models.PortfolioProfile, error) {
	var profile models.PortfolioProfile
	err := r.db.First(&profile, "id = ?", models.ProfileID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateSection replaces one jsonb column of the singleton row wholesale.
// The section name must already be validated against the known column set;
// it is interpolated as a column identifier. An update that matches no row
// reports gorm.ErrRecordNotFound instead of inserting: the singleton is
// seeded externally and never auto-created here.
func (r *PortfolioRepo) UpdateSection(section string, data datatypes.JSON) error {
	result := r.db.Model(&models.PortfolioProfile{}).
		Where("id = ?", models.ProfileID).
		Update(section, data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
