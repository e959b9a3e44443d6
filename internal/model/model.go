package model

import (
	"html/template"
	"time"
)

// SiteConfig is the site-wide title/tagline pair pages personalise themselves with.
type SiteConfig struct {
	Title   string
	Tagline string
}

// ContentItem represents a single documentation page rendered from markdown.
type ContentItem struct {
	Title       string
	Description string
	Date        time.Time
	Weight      int
	SourcePath  string
	Permalink   string
	ContentHTML template.HTML
	Frontmatter map[string]interface{}
	Summary     string
}

// SiteData holds all site-wide data, including configuration and content.
type SiteData struct {
	Config SiteConfig
	Docs   []*ContentItem
}

// FindDoc returns the doc with the given permalink, or nil.
func (s *SiteData) FindDoc(permalink string) *ContentItem {
	for _, d := range s.Docs {
		if d.Permalink == permalink {
			return d
		}
	}
	return nil
}
