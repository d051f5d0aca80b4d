package portfolio

import (
	"testing"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	sections    *models.ProfileSections
	sectionsErr error
	projects    []models.Project
	projectsErr error
	skills      []models.SkillGroup
	skillsErr   error
}

func (f *fakeReader) PortfolioSections() (*models.ProfileSections, error) {
	return f.sections, f.sectionsErr
}

func (f *fakeReader) Projects() ([]models.Project, error) {
	return f.projects, f.projectsErr
}

func (f *fakeReader) Skills() ([]models.SkillGroup, error) {
	return f.skills, f.skillsErr
}

func fullReader() *fakeReader {
	return &fakeReader{
		sections: &models.ProfileSections{
			Hero:  &models.HeroSection{Name: "ALEX MORGAN", Title: "Full-Stack Web Developer"},
			About: &models.AboutSection{Heading: "ABOUT ME", YearsExperience: "5+"},
		},
		projects: []models.Project{
			{Title: "Shop", Category: models.CategoryFullStack},
			{Title: "Dashboard", Category: models.CategoryFrontend},
		},
		skills: []models.SkillGroup{
			{Category: "Frontend", Technologies: []string{"React"}},
		},
	}
}

func TestSnapshotBeforeFirstLoad(t *testing.T) {
	provider := NewProvider(fullReader())

	data, loading, err := provider.Snapshot()
	assert.Nil(t, data)
	assert.True(t, loading, "dependents render the neutral state until the first load settles")
	assert.NoError(t, err)
}

func TestLoadMergesAllSources(t *testing.T) {
	reader := fullReader()
	provider := NewProvider(reader)
	require.NoError(t, provider.Load())

	data, loading, err := provider.Snapshot()
	require.NoError(t, err)
	assert.False(t, loading)
	require.NotNil(t, data)

	assert.Equal(t, "ALEX MORGAN", data.Hero.Name)
	assert.Equal(t, "ABOUT ME", data.About.Heading)
	assert.Nil(t, data.Contact, "absent sections stay nil")
	assert.Len(t, data.Projects, 2)
	assert.Equal(t, "Shop", data.Projects[0].Title)
	assert.Len(t, data.Skills, 1)
}

func TestLoadProfileFailureBlocksSnapshot(t *testing.T) {
	reader := fullReader()
	reader.sectionsErr = errs.NewNotFound("portfolio profile")
	provider := NewProvider(reader)

	require.Error(t, provider.Load())

	data, loading, err := provider.Snapshot()
	assert.Nil(t, data, "projects and skills must not be served without the profile")
	assert.False(t, loading)
	assert.True(t, errs.IsNotFound(err))
}

func TestLoadCollectionFailuresDegradeToEmptyLists(t *testing.T) {
	reader := fullReader()
	reader.projectsErr = errs.NewStoreError("find", "projects", nil)
	reader.skillsErr = errs.NewStoreError("find", "skills", nil)
	provider := NewProvider(reader)

	require.NoError(t, provider.Load())

	data, loading, err := provider.Snapshot()
	require.NoError(t, err)
	assert.False(t, loading)
	require.NotNil(t, data)
	assert.Equal(t, "ALEX MORGAN", data.Hero.Name, "the profile still renders")
	assert.NotNil(t, data.Projects)
	assert.Empty(t, data.Projects)
	assert.NotNil(t, data.Skills)
	assert.Empty(t, data.Skills)
}

func TestRefreshObservesMutations(t *testing.T) {
	reader := fullReader()
	provider := NewProvider(reader)
	require.NoError(t, provider.Load())

	reader.projects = append(reader.projects, models.Project{Title: "API", Category: models.CategoryBackend})
	require.NoError(t, provider.Refresh())

	data, _, err := provider.Snapshot()
	require.NoError(t, err)
	assert.Len(t, data.Projects, 3)
	assert.Equal(t, "API", data.Projects[2].Title)
}

func TestRefreshRecoversFromErrorState(t *testing.T) {
	reader := fullReader()
	reader.sectionsErr = errs.NewStoreError("find", "portfolio profile", nil)
	provider := NewProvider(reader)
	require.Error(t, provider.Load())

	reader.sectionsErr = nil
	require.NoError(t, provider.Refresh())

	data, _, err := provider.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "ALEX MORGAN", data.Hero.Name)
}
