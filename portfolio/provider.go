package portfolio

import (
	"sync"

	"github.com/alexmorgan-dev/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ContentReader is the slice of the content service the provider reads
// through.
type ContentReader interface {
	PortfolioSections() (*models.ProfileSections, error)
	Projects() ([]models.Project, error)
	Skills() ([]models.SkillGroup, error)
}

// Snapshot is the merged read model the public site and the admin forms
// share. A nil sub-object means that section is not ready and should render
// as nothing.
type Snapshot struct {
	Hero     *models.HeroSection    `json:"hero"`
	About    *models.AboutSection   `json:"about"`
	Contact  *models.ContactSection `json:"contact"`
	Social   *models.SocialLinks    `json:"social"`
	Projects []models.Project       `json:"projects"`
	Skills   []models.SkillGroup    `json:"skills"`
}

// Provider is the single point of truth for read access to portfolio
// content. It fetches the profile row, then projects, then skills, in that
// order, merges them into one snapshot and serves it until an explicit
// Refresh. Writers call Refresh after a successful mutation instead of
// forcing consumers to reload.
type Provider struct {
	reader ContentReader
	logger zerolog.Logger

	group singleflight.Group

	mu      sync.RWMutex
	data    *Snapshot
	loading bool
	err     error
}

func NewProvider(reader ContentReader) *Provider {
	return &Provider{
		reader:  reader,
		logger:  log.With().Str("serviceName", "portfolioProvider").Logger(),
		loading: true,
	}
}

// Load performs the initial fetch. A profile failure blocks the whole
// snapshot; collection failures degrade to empty lists so individual
// sections can still render.
func (p *Provider) Load() error {
	return p.Refresh()
}

// Refresh invalidates the snapshot and re-fetches. Concurrent callers are
// collapsed into one fetch.
func (p *Provider) Refresh() error {
	_, err, _ := p.group.Do("refresh", func() (any, error) {
		snapshot, err := p.fetch()

		p.mu.Lock()
		defer p.mu.Unlock()
		p.loading = false
		if err != nil {
			p.data = nil
			p.err = err
			return nil, err
		}
		p.data = snapshot
		p.err = nil
		return snapshot, nil
	})
	return err
}

func (p *Provider) fetch() (*Snapshot, error) {
	sections, err := p.reader.PortfolioSections()
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to fetch portfolio profile")
		return nil, err
	}

	snapshot := &Snapshot{
		Hero:     sections.Hero,
		About:    sections.About,
		Contact:  sections.Contact,
		Social:   sections.Social,
		Projects: []models.Project{},
		Skills:   []models.SkillGroup{},
	}

	projects, err := p.reader.Projects()
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to fetch projects, serving empty list")
	} else {
		snapshot.Projects = projects
	}

	skills, err := p.reader.Skills()
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to fetch skills, serving empty list")
	} else {
		snapshot.Skills = skills
	}

	return snapshot, nil
}

// Snapshot returns the current merged data, whether the first load is still
// in flight, and the load error if any. While loading is true, dependents
// render a neutral state; when err is set, data is nil.
func (p *Provider) Snapshot() (*Snapshot, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data, p.loading, p.err
}
