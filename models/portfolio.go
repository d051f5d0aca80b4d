package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileID identifies the one and only portfolio_data row. All section
// updates target this id; the backend never creates a second row.
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Section names accepted by the portfolio update operation.
const (
	SectionHero    = "hero"
	SectionAbout   = "about"
	SectionContact = "contact"
	SectionSocial  = "social"
)

// PortfolioProfile is the singleton row backing the public site's hero,
// about, contact and social sections. Each section is stored as an opaque
// jsonb blob and replaced wholesale on update.
type PortfolioProfile struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Hero      datatypes.JSON `json:"hero" db:"hero" gorm:"type:jsonb"`
	About     datatypes.JSON `json:"about" db:"about" gorm:"type:jsonb"`
	Contact   datatypes.JSON `json:"contact" db:"contact" gorm:"type:jsonb"`
	Social    datatypes.JSON `json:"social" db:"social" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at" gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (PortfolioProfile) TableName() string {
	return "portfolio_data"
}

// HeroSection is the landing banner content.
type HeroSection struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

// AboutSection holds the bio plus the three highlight counters. The counter
// values are strings ("5+", "50+") and are parsed client-side.
type AboutSection struct {
	Heading           string `json:"heading"`
	Bio               string `json:"bio"`
	YearsExperience   string `json:"yearsExperience"`
	ProjectsCompleted string `json:"projectsCompleted"`
	ClientsSatisfied  string `json:"clientsSatisfied"`
}

// ContactSection is the get-in-touch block shown next to the contact form.
type ContactSection struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
}

// SocialLinks are the footer/profile links.
type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// ProfileSections is the decoded form of the singleton row. A nil section
// means the blob was absent; consumers render nothing for that section.
type ProfileSections struct {
	Hero    *HeroSection    `json:"hero"`
	About   *AboutSection   `json:"about"`
	Contact *ContactSection `json:"contact"`
	Social  *SocialLinks    `json:"social"`
}

// Sections decodes the four jsonb blobs into their typed form.
func (p *PortfolioProfile) Sections() (*ProfileSections, error) {
	var out ProfileSections
	if err := decodeBlob(p.Hero, &out.Hero); err != nil {
		return nil, fmt.Errorf("decoding hero section: %w", err)
	}
	if err := decodeBlob(p.About, &out.About); err != nil {
		return nil, fmt.Errorf("decoding about section: %w", err)
	}
	if err := decodeBlob(p.Contact, &out.Contact); err != nil {
		return nil, fmt.Errorf("decoding contact section: %w", err)
	}
	if err := decodeBlob(p.Social, &out.Social); err != nil {
		return nil, fmt.Errorf("decoding social section: %w", err)
	}
	return &out, nil
}

func decodeBlob[T any](blob datatypes.JSON, dst **T) error {
	if len(blob) == 0 || string(blob) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(blob, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

// DecodeSection validates that payload is a full sub-object for the named
// section and returns the blob to persist. Unknown section names are
// rejected so the column name can never be attacker-chosen.
func DecodeSection(section string, payload json.RawMessage) (datatypes.JSON, error) {
	var target any
	switch section {
	case SectionHero:
		target = &HeroSection{}
	case SectionAbout:
		target = &AboutSection{}
	case SectionContact:
		target = &ContactSection{}
	case SectionSocial:
		target = &SocialLinks{}
	default:
		return nil, fmt.Errorf("unknown portfolio section %q", section)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return nil, err
	}

	// Re-marshal the typed value so only known fields are persisted.
	blob, err := json.Marshal(target)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(blob), nil
}
