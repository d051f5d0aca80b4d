package database

import (
	"gorm.io/gorm"
)

type Database struct {
	portfolioRepo *PortfolioRepo
	projectRepo   *ProjectRepo
	skillRepo     *SkillRepo
	messageRepo   *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		portfolioRepo: NewPortfolioRepo(db),
		projectRepo:   NewProjectRepo(db),
		skillRepo:     NewSkillRepo(db),
		messageRepo:   NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PortfolioRepo() *PortfolioRepo {
	return d.portfolioRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.messageRepo
}
