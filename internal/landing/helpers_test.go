package landing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type fakeLayout struct {
	got []LayoutOptions
}

func (l *fakeLayout) Wrap(opts LayoutOptions, body ...g.Node) g.Node {
	l.got = append(l.got, opts)
	return h.Div(h.ID("layout"), g.Attr("data-description", opts.Description), g.Group(body))
}

type fakeURLs struct {
	resolved []string
}

func (u *fakeURLs) Resolve(path string) string {
	u.resolved = append(u.resolved, path)
	return "/base/" + strings.TrimPrefix(path, "/")
}

type fakeCode struct{}

func (fakeCode) Render(language, source string) g.Node {
	return h.Pre(h.Class("code-block"), g.Attr("data-language", language), g.Text(source))
}

type fakeLink struct{}

func (fakeLink) Render(to string, attrs []g.Node, children ...g.Node) g.Node {
	return h.A(h.Href(to), g.Attr("data-link", "true"), g.Group(attrs), g.Group(children))
}

func newTestHost() (Host, *fakeLayout, *fakeURLs) {
	layout := &fakeLayout{}
	urls := &fakeURLs{}
	return Host{Layout: layout, URLs: urls, Code: fakeCode{}, Links: fakeLink{}}, layout, urls
}

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func byClass(tag, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Data != tag {
			return false
		}
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
