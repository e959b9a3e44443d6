package theme

import (
	"github.com/jibingeo/next-auth/internal/model"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DocBody renders a documentation page's content below its title.
func DocBody(item *model.ContentItem) g.Node {
	return h.Main(h.Class("doc container"),
		h.Article(
			h.H1(h.Class("doc__title"), g.Text(item.Title)),
			h.Div(h.Class("markdown"), g.Raw(string(item.ContentHTML))),
		),
	)
}
