package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DefaultCodeStyle is used when no style is configured or the configured one is unknown.
const DefaultCodeStyle = "github"

// Highlighter renders code samples as class-annotated HTML with chroma.
type Highlighter struct {
	Style string
}

func (hl Highlighter) formatter() *chromahtml.Formatter {
	return chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(2))
}

func (hl Highlighter) style() *chroma.Style {
	name := hl.Style
	if name == "" {
		name = DefaultCodeStyle
	}
	if s := styles.Get(name); s != nil {
		return s
	}
	return styles.Fallback
}

// Render highlights source as language. Unknown languages use the fallback
// lexer; if chroma fails the source is emitted as escaped plain text.
func (hl Highlighter) Render(language, source string) g.Node {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	var buf strings.Builder
	it, err := lexer.Tokenise(nil, source)
	if err == nil {
		err = hl.formatter().Format(&buf, hl.style(), it)
	}
	if err != nil {
		return plainBlock(language, source)
	}
	return h.Div(h.Class("code-block language-"+language), g.Raw(buf.String()))
}

func plainBlock(language, source string) g.Node {
	return h.Div(h.Class("code-block language-"+language),
		h.Pre(h.Class("chroma"), h.Code(g.Text(source))),
	)
}

// CSS writes the stylesheet matching the classes Render emits.
func (hl Highlighter) CSS(w io.Writer) error {
	if err := hl.formatter().WriteCSS(w, hl.style()); err != nil {
		return fmt.Errorf("writing highlight css: %w", err)
	}
	return nil
}
