package docs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPermalink(t *testing.T) {
	tests := map[string]string{
		"getting-started.md":  "/getting-started/",
		"guides/oauth.md":     "/guides/oauth/",
		"index.md":            "/",
		"guides/index.md":     "/guides/",
		"providers/google.MD": "/providers/google/",
	}
	for in, want := range tests {
		assert.Equal(t, want, Permalink(in), in)
	}
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "Getting Started", TitleFromFilename("getting-started.md"))
	assert.Equal(t, "Rest Api", TitleFromFilename("guides/rest_api.md"))
	assert.Equal(t, "Faq", TitleFromFilename("faq.md"))
}

func TestParseWithFrontmatter(t *testing.T) {
	src := "---\ntitle: Introduction\ndescription: What it is\nweight: 2\ndate: 2020-06-01\n---\n# Hello\n\nSome *text*.\n"

	item, err := NewCollector("github").Parse("introduction.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "Introduction", item.Title)
	assert.Equal(t, "What it is", item.Description)
	assert.Equal(t, 2, item.Weight)
	assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), item.Date)
	assert.Equal(t, "/introduction/", item.Permalink)
	assert.Contains(t, string(item.ContentHTML), `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, string(item.ContentHTML), "<em>text</em>")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	item, err := NewCollector("github").Parse("getting-started.md", []byte("Install with `npm`.\n"))
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", item.Title)
	assert.NotNil(t, item.Frontmatter)
	assert.Contains(t, string(item.ContentHTML), "<code>npm</code>")
}

func TestParseHighlightsFencedCode(t *testing.T) {
	src := "```js\nconst a = 1\n```\n"
	item, err := NewCollector("github").Parse("code.md", []byte(src))
	require.NoError(t, err)

	assert.Contains(t, string(item.ContentHTML), `class="chroma"`)
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "getting-started.md"), "---\nweight: 1\n---\nStart here.\n")
	writeFile(t, filepath.Join(dir, "guides", "b.md"), "---\ntitle: Beta\n---\nB\n")
	writeFile(t, filepath.Join(dir, "guides", "a.md"), "---\ntitle: Alpha\n---\nA\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	items, err := NewCollector("github").Collect(dir)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Alpha", items[0].Title)
	assert.Equal(t, "Beta", items[1].Title)
	assert.Equal(t, "Getting Started", items[2].Title)
	assert.Equal(t, "/guides/a/", items[0].Permalink)
	assert.Equal(t, filepath.Join(dir, "guides", "a.md"), items[0].SourcePath)
}

func TestCollectMissingDir(t *testing.T) {
	items, err := NewCollector("github").Collect(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, items)
}
