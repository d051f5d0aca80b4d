package site

import (
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
)

// FilterCategories returns the category filter values the projects section
// offers, "All" first.
func FilterCategories() []string {
	return []string{
		models.CategoryAll,
		models.CategoryFullStack,
		models.CategoryFrontend,
		models.CategoryBackend,
	}
}

// FilterByCategory returns the projects matching the selected category.
// "All" returns the full list unchanged; any other value selects exact
// category matches, preserving order.
func FilterByCategory(projects []models.Project, category string) []models.Project {
	if category == models.CategoryAll || category == "" {
		return projects
	}

	filtered := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if project.Category == category {
			filtered = append(filtered, project)
		}
	}
	return filtered
}
