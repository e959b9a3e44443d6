package landing

import (
	g "maragu.dev/gomponents"
)

// URLResolver maps a logical asset or page path to the URL the browser should load.
type URLResolver interface {
	Resolve(path string) string
}

// LayoutOptions are the page-level settings handed to the layout chrome.
type LayoutOptions struct {
	Title       string
	Description string
}

// Layout wraps a page body in the surrounding site chrome.
type Layout interface {
	Wrap(opts LayoutOptions, body ...g.Node) g.Node
}

// CodeBlock renders literal source text tagged with a highlighting language.
type CodeBlock interface {
	Render(language, source string) g.Node
}

// Link renders a navigation link to an in-site destination.
type Link interface {
	Render(to string, attrs []g.Node, children ...g.Node) g.Node
}

// Host bundles the collaborators a page needs from the surrounding site.
// All fields are required.
type Host struct {
	Layout Layout
	URLs   URLResolver
	Code   CodeBlock
	Links  Link
}
