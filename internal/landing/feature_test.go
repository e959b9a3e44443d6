package landing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFeatureWithoutImage(t *testing.T) {
	f := Features()[0]
	doc := parse(t, renderNode(t, RenderFeature(f, "")))

	assert.Empty(t, findAll(doc, byTag("img")))
	assert.Empty(t, findAll(doc, byClass("div", "feature-image-wrapper")))

	h3 := findAll(doc, byTag("h3"))
	require.Len(t, h3, 1)
	assert.Equal(t, "Easy to Setup", textOf(h3[0]))
}

func TestRenderFeatureWithImage(t *testing.T) {
	f := Features()[1]
	doc := parse(t, renderNode(t, RenderFeature(f, "/img/social.svg")))

	imgs := findAll(doc, byTag("img"))
	require.Len(t, imgs, 1)
	assert.Equal(t, "/img/social.svg", attr(imgs[0], "src"))
	assert.Equal(t, "Easy to Sign in", attr(imgs[0], "alt"))
}

func TestRenderFeatureImageComesFirst(t *testing.T) {
	out := renderNode(t, RenderFeature(Features()[2], "/x.svg"))
	img := strings.Index(out, "<img")
	require.GreaterOrEqual(t, img, 0)
	assert.Less(t, img, strings.Index(out, "<h3"))
}

func TestRenderFeatureDescription(t *testing.T) {
	doc := parse(t, renderNode(t, RenderFeature(Features()[0], "")))

	items := findAll(doc, byTag("li"))
	require.Len(t, items, 4)
	assert.Equal(t, "Full stack open source authentication", textOf(items[0]))

	last := items[3]
	require.Len(t, findAll(last, byTag("br")), 1)
	em := findAll(last, byTag("em"))
	require.Len(t, em, 1)
	assert.Equal(t, "(MySQL, MariaDB, Postgres, MongoDB…)", textOf(em[0]))
	assert.Equal(t, "Bring Your Own Database (any database)(MySQL, MariaDB, Postgres, MongoDB…)", textOf(last))
}

func TestRenderFeatureEscapesText(t *testing.T) {
	f := Feature{
		Title:       "<script>",
		Description: []Bullet{{{Kind: SpanPlain, Text: "a & b"}}},
	}
	out := renderNode(t, RenderFeature(f, ""))
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
}
