// Package content serves the clinic's static pages. Page text lives in a YAML
// document embedded in the binary and may be overridden from a directory.
package content

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/icon"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/site.yaml
var builtinFS embed.FS

// FileName is the document looked up in an override directory.
const FileName = "site.yaml"

// Page identifiers.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageServices = "services"
)

// RequiredPages must be present in every site document.
var RequiredPages = []string{PageHome, PageAbout, PageServices}

// ErrMissingPage is returned when a document lacks a required page.
var ErrMissingPage = errors.New("content: required page missing")

// Site is the whole content document.
type Site struct {
	Clinic     string    `yaml:"clinic" json:"clinic"`
	Tagline    string    `yaml:"tagline" json:"tagline"`
	Navigation []NavItem `yaml:"navigation" json:"navigation"`
	Pages      []Page    `yaml:"pages" json:"pages"`
}

// NavItem is an entry of the top navigation.
type NavItem struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Page is one navigable page.
type Page struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Hero     Hero      `yaml:"hero" json:"hero"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Hero is the banner at the top of a page.
type Hero struct {
	Heading string   `yaml:"heading" json:"heading"`
	Body    string   `yaml:"body" json:"body"`
	Actions []Action `yaml:"actions" json:"actions,omitempty"`
}

// Action is a call-to-action button. Target is a page id, "booking" or "tel".
type Action struct {
	Label  string `yaml:"label" json:"label"`
	Target string `yaml:"target" json:"target"`
}

// Section is a titled block of a page.
type Section struct {
	ID         string   `yaml:"id" json:"id"`
	Heading    string   `yaml:"heading" json:"heading,omitempty"`
	Intro      string   `yaml:"intro" json:"intro,omitempty"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs,omitempty"`
	Bullets    []string `yaml:"bullets" json:"bullets,omitempty"`
	Items      []Item   `yaml:"items" json:"items,omitempty"`
	Actions    []Action `yaml:"actions" json:"actions,omitempty"`
}

// Item is a card, stat, testimonial or team member within a section.
type Item struct {
	Icon        icon.ID  `yaml:"icon" json:"icon,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Subtitle    string   `yaml:"subtitle" json:"subtitle,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Value       string   `yaml:"value" json:"value,omitempty"`
	Rating      int      `yaml:"rating" json:"rating,omitempty"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
	Details     []Detail `yaml:"details" json:"details,omitempty"`
	Highlight   bool     `yaml:"highlight" json:"highlight,omitempty"`
}

// Detail is a labelled fact about an item.
type Detail struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Parse decodes and validates a site document.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("content: parse site: %w", err)
	}
	for _, id := range RequiredPages {
		if _, ok := s.page(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPage, id)
		}
	}
	return &s, nil
}

// LoadBuiltin returns the embedded site document.
func LoadBuiltin() (*Site, error) {
	data, err := builtinFS.ReadFile("builtin/" + FileName)
	if err != nil {
		return nil, fmt.Errorf("content: read builtin: %w", err)
	}
	return Parse(data)
}

// Load reads dir/site.yaml, or the builtin document when dir is empty.
func Load(dir string) (*Site, error) {
	if dir == "" {
		return LoadBuiltin()
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", dir, err)
	}
	return Parse(data)
}

// Resolve maps a requested page id to a served one. Anything unknown
// lands on the home page.
func Resolve(id string) string {
	switch id {
	case PageHome, PageAbout, PageServices:
		return id
	}
	return PageHome
}

// Page returns the page for id, falling back to home.
func (s *Site) Page(id string) Page {
	p, _ := s.page(Resolve(id))
	return p
}

func (s *Site) page(id string) (Page, bool) {
	for _, p := range s.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}
