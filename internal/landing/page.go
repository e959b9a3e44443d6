package landing

import (
	"io"

	"github.com/jibingeo/next-auth/internal/model"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// LiveDemoURL is where the "Live Demo" button points, whatever the host configuration.
	LiveDemoURL        = "https://next-auth-example.now.sh"
	// GettingStartedPath is resolved through the host before linking.
	GettingStartedPath = "/getting-started"

	InstallCommand = "npm install next-auth"

	ServerRouteLabel     = "Step 1 – Create API route"
	ClientComponentLabel = "Step 2 – Use React component"
)

// Disclaimer returns the closing line of the page for the given site title.
func Disclaimer(title string) string {
	return title + " is not affiliated with Vercel or Next.js"
}

// Page composes the landing page and wraps it in the host layout.
// A nil cfg renders with an empty title and tagline.
func Page(cfg *model.SiteConfig, host Host) g.Node {
	var site model.SiteConfig
	if cfg != nil {
		site = *cfg
	}

	return host.Layout.Wrap(LayoutOptions{Description: site.Tagline},
		hero(site, host),
		h.Main(h.Class("home-main"),
			featureGrid(host.URLs),
			quickStart(host.Code),
			h.Div(h.Class("container"),
				h.Div(h.Class("row home-subtitle"), g.Text(Disclaimer(site.Title))),
			),
		),
	)
}

// Render writes the landing page to w.
func Render(w io.Writer, cfg *model.SiteConfig, host Host) error {
	return Page(cfg, host).Render(w)
}

func hero(site model.SiteConfig, host Host) g.Node {
	return h.Header(h.Class("hero hero-banner"),
		h.Div(h.Class("container"),
			h.H1(h.Class("hero__title"), g.Text(site.Title)),
			h.P(h.Class("hero__subtitle"), g.Text(site.Tagline)),
			h.Div(h.Class("buttons"),
				h.A(h.Class("button button--outline button--primary button--lg"),
					h.Href(LiveDemoURL),
					g.Text("Live Demo"),
				),
				host.Links.Render(host.URLs.Resolve(GettingStartedPath),
					[]g.Node{h.Class("button button--primary button--lg")},
					g.Text("Get Started"),
				),
			),
		),
	)
}

func featureGrid(urls URLResolver) g.Node {
	all := Features()
	cards := make([]g.Node, 0, len(all))
	for _, f := range all {
		var imageURL string
		if f.ImagePath != "" {
			imageURL = urls.Resolve(f.ImagePath)
		}
		cards = append(cards, RenderFeature(f, imageURL))
	}

	return h.Section(h.Class("features"),
		h.Div(h.Class("container"),
			h.Div(h.Class("row"), g.Group(cards)),
		),
	)
}

func quickStart(code CodeBlock) g.Node {
	return h.Section(h.Class("quick-start"),
		h.Div(h.Class("container"),
			h.Div(h.Class("row"),
				h.Div(h.Class("col"), h.H1(h.Class("text--center"), g.Text(InstallCommand))),
			),
			h.Div(h.Class("row"),
				codeColumn(ServerRouteLabel, ServerRouteSample(), code),
				codeColumn(ClientComponentLabel, ClientComponentSample(), code),
			),
			h.Div(h.Class("row"),
				h.Div(h.Class("col"), h.H2(h.Class("text--center"), g.Text("That's all the code you need!"))),
			),
		),
	)
}

func codeColumn(label string, sample CodeSample, code CodeBlock) g.Node {
	return h.Div(h.Class("col col--6"),
		h.Div(h.Class("code"),
			h.H4(h.Class("code-heading"), g.Text(label)),
			code.Render(sample.Language, sample.Source),
		),
	)
}
