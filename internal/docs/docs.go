// Package docs turns a directory of markdown files into documentation pages.
package docs

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jibingeo/next-auth/internal/model"

	"github.com/adrg/frontmatter"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var dateLayouts = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// Collector converts markdown files to content items.
type Collector struct {
	md goldmark.Markdown
}

// NewCollector returns a Collector whose fenced code blocks are highlighted
// with the given chroma style, using the same CSS classes as the theme.
func NewCollector(codeStyle string) *Collector {
	return &Collector{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(codeStyle),
					highlighting.WithFormatOptions(chromahtml.WithClasses(true), chromahtml.TabWidth(2)),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
	}
}

// Collect walks dir for markdown files and returns one item per file, ordered
// by weight and then title. A missing dir yields no items.
func (c *Collector) Collect(dir string) ([]*model.ContentItem, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var items []*model.ContentItem
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("accessing %s: %w", p, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		src, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", p, err)
		}

		item, err := c.Parse(rel, src)
		if err != nil {
			return err
		}
		item.SourcePath = p
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting docs from %s: %w", dir, err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Weight != items[j].Weight {
			return items[i].Weight < items[j].Weight
		}
		return items[i].Title < items[j].Title
	})
	return items, nil
}

// Parse builds a content item from the markdown source of the file at rel,
// a slash or OS separated path relative to the content root.
func (c *Collector) Parse(rel string, src []byte) (*model.ContentItem, error) {
	var fm map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(src), &fm)
	if err != nil {
		// No usable front matter: the whole file is markdown.
		body = src
		fm = nil
	}
	if fm == nil {
		fm = map[string]interface{}{}
	}

	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("converting %s: %w", rel, err)
	}

	item := &model.ContentItem{
		Title:       stringField(fm, "title"),
		Description: stringField(fm, "description"),
		Summary:     stringField(fm, "summary"),
		Weight:      intField(fm, "weight"),
		Permalink:   Permalink(rel),
		ContentHTML: template.HTML(buf.String()),
		Frontmatter: fm,
	}
	if item.Title == "" {
		item.Title = TitleFromFilename(rel)
	}
	if s := stringField(fm, "date"); s != "" {
		item.Date = parseDate(s)
	} else if t, ok := fm["date"].(time.Time); ok {
		item.Date = t
	}
	return item, nil
}

// Permalink maps a content-relative file path to its URL path, e.g.
// "guides/oauth.md" to "/guides/oauth/". An index.md maps to its directory.
func Permalink(rel string) string {
	p := filepath.ToSlash(rel)
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "index" {
		p = path.Dir(p)
	}
	p = path.Clean("/" + p)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// TitleFromFilename derives a title from a file name, e.g. "getting-started.md"
// becomes "Getting Started".
func TitleFromFilename(rel string) string {
	base := filepath.Base(rel)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func stringField(fm map[string]interface{}, key string) string {
	s, _ := fm[key].(string)
	return s
}

func intField(fm map[string]interface{}, key string) int {
	switch v := fm[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
