package render

import (
	"io"

	"github.com/vango-dev/markup/pkg/tag"
)

// PageData describes a complete HTML page.
type PageData struct {
	// Body is appended to <body>. It must not already have a parent.
	Body tag.Element

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.)
	Links []LinkTag

	// Scripts are appended to the end of <body>.
	Scripts []ScriptTag

	// Styles contains inline CSS styles
	Styles []string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel   string
	Href  string
	Type  string
	Media string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute, text/javascript when empty
	Inline string // inline script content
}

// NewPage builds a document from page.
func NewPage(ctx tag.Context, page PageData) *tag.Document {
	doc := tag.NewDocument(ctx)
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	doc.SetLang(lang)

	head := doc.Head()
	head.Meta().SetCharset("utf-8")
	for _, m := range page.Meta {
		addMeta(head.Node, m)
	}
	if page.Title != "" {
		head.Title(page.Title)
	}
	for _, l := range page.Links {
		link := head.Link()
		setIf(link.Node, "rel", l.Rel)
		setIf(link.Node, "href", l.Href)
		setIf(link.Node, "type", l.Type)
		setIf(link.Node, "media", l.Media)
	}
	for _, href := range page.StyleSheets {
		head.LinkCSS(href)
	}
	for _, css := range page.Styles {
		head.StyleBlock(css)
	}

	body := doc.Body()
	if page.Body != nil {
		tag.Add(body, page.Body)
	}
	for _, s := range page.Scripts {
		var el *tag.Script
		if s.Src != "" {
			el = body.ScriptSrc(s.Src)
		} else {
			el = body.ScriptInline(s.Inline)
		}
		if s.Type != "" {
			el.SetType(s.Type)
		}
	}
	return doc
}

func addMeta(head *tag.Node, m MetaTag) {
	meta := head.Meta()
	setIf(meta.Node, "charset", m.Charset)
	setIf(meta.Node, "name", m.Name)
	setIf(meta.Node, "property", m.Property)
	setIf(meta.Node, "http-equiv", m.HTTPEquiv)
	setIf(meta.Node, "content", m.Content)
}

func setIf(n *tag.Node, key, value string) {
	if value != "" {
		n.SetAttr(key, value)
	}
}

// RenderPage renders a complete HTML document built from page.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	return r.RenderToWriter(w, NewPage(nil, page))
}
