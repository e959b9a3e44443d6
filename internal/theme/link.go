package theme

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Anchor renders in-site links as plain anchors.
type Anchor struct{}

func (Anchor) Render(to string, attrs []g.Node, children ...g.Node) g.Node {
	return h.A(h.Href(to), g.Group(attrs), g.Group(children))
}
