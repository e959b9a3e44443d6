package landing

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RenderFeature renders one card of the feature grid. An empty imageURL omits
// the image block entirely.
func RenderFeature(f Feature, imageURL string) g.Node {
	return h.Div(h.Class("col col--4 feature"),
		g.If(imageURL != "", featureImage(f.Title, imageURL)),
		h.H3(g.Text(f.Title)),
		h.Ul(h.Class("feature__description"),
			g.Map(f.Description, renderBullet),
		),
	)
}

func featureImage(title, src string) g.Node {
	return h.Div(h.Class("text--center"),
		h.Div(h.Class("feature-image-wrapper"),
			h.Img(h.Class("feature-image"), h.Src(src), h.Alt(title)),
		),
	)
}

func renderBullet(b Bullet) g.Node {
	return h.Li(g.Map([]Span(b), renderSpan))
}

func renderSpan(s Span) g.Node {
	switch s.Kind {
	case SpanEmphasis:
		return h.Em(g.Text(s.Text))
	case SpanBreak:
		return h.Br()
	default:
		return g.Text(s.Text)
	}
}
