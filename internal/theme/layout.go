package theme

import (
	"github.com/jibingeo/next-auth/internal/landing"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const (
	SiteStylesheet      = "css/site.css"
	HighlightStylesheet = "css/highlight.css"

	githubURL = "https://github.com/nextauthjs/next-auth"
)

// Layout is the site chrome every page is rendered inside: the HTML document,
// navbar and footer.
type Layout struct {
	SiteTitle string
	Lang      string
	URLs      landing.URLResolver
}

// Wrap renders a full HTML document around body.
func (l Layout) Wrap(opts landing.LayoutOptions, body ...g.Node) g.Node {
	lang := l.Lang
	if lang == "" {
		lang = "en"
	}

	return components.HTML5(components.HTML5Props{
		Title:       l.title(opts.Title),
		Description: opts.Description,
		Language:    lang,
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href(l.URLs.Resolve(SiteStylesheet))),
			h.Link(h.Rel("stylesheet"), h.Href(l.URLs.Resolve(HighlightStylesheet))),
		},
		Body: []g.Node{
			l.navbar(),
			h.Div(h.Class("main-wrapper"), g.Group(body)),
			l.footer(),
		},
	})
}

func (l Layout) title(page string) string {
	switch {
	case page == "":
		return l.SiteTitle
	case l.SiteTitle == "":
		return page
	default:
		return page + " | " + l.SiteTitle
	}
}

func (l Layout) navbar() g.Node {
	return h.Nav(h.Class("navbar"),
		h.Div(h.Class("navbar__inner"),
			h.A(h.Class("navbar__brand"), h.Href(l.URLs.Resolve("/")), g.Text(l.SiteTitle)),
			h.Div(h.Class("navbar__items"),
				h.A(h.Class("navbar__item"), h.Href(l.URLs.Resolve(landing.GettingStartedPath)), g.Text("Docs")),
				h.A(h.Class("navbar__item"), h.Href(githubURL), h.Rel("noopener noreferrer"), h.Target("_blank"), g.Text("GitHub")),
			),
		),
	)
}

func (l Layout) footer() g.Node {
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("container"),
			h.A(h.Href(githubURL), g.Text("GitHub")),
			g.Text(" · "),
			h.A(h.Href(l.URLs.Resolve(landing.GettingStartedPath)), g.Text("Getting Started")),
		),
	)
}
