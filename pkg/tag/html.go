package tag

import (
	"strconv"
	"strings"
)

// appendEl attaches e to n with the given classes and returns it.
func appendEl[T Element](n *Node, e T, classes []string) T {
	e.Base().ClassAppend(classes...)
	return Add(n, e)
}

// plain appends a generic element named tagName.
func (n *Node) plain(tagName string, classes []string) *Node {
	return appendEl(n, NewNode(n.ctx, tagName), classes)
}

func (n *Node) Div(classes ...string) *Div {
	return appendEl(n, NewDiv(n.ctx), classes)
}

// A appends an anchor.
func (n *Node) A(classes ...string) *Anchor {
	return appendEl(n, NewAnchor(n.ctx), classes)
}

// Button appends a button of type "button".
func (n *Node) Button(classes ...string) *Button {
	b := appendEl(n, NewButton(n.ctx), classes)
	b.SetType("button")
	return b
}

// Submit appends a button of type "submit".
func (n *Node) Submit(classes ...string) *Button {
	b := appendEl(n, NewButton(n.ctx), classes)
	b.SetType("submit")
	return b
}

func (n *Node) Label(classes ...string) *Label {
	return appendEl(n, NewLabel(n.ctx), classes)
}

// LabelText appends a label holding text.
func (n *Node) LabelText(text string) *Label {
	l := n.Label()
	l.AppendText(text)
	return l
}

func (n *Node) Input(classes ...string) *Input {
	return appendEl(n, NewInput(n.ctx), classes)
}

func (n *Node) typedInput(typ string, classes []string) *Input {
	in := n.Input(classes...)
	in.SetType(typ)
	return in
}

func (n *Node) DateInput(classes ...string) *Input     { return n.typedInput("date", classes) }
func (n *Node) TimeInput(classes ...string) *Input     { return n.typedInput("time", classes) }
func (n *Node) DatetimeInput(classes ...string) *Input { return n.typedInput("datetime", classes) }
func (n *Node) FileInput(classes ...string) *Input     { return n.typedInput("file", classes) }
func (n *Node) PasswordInput(classes ...string) *Input { return n.typedInput("password", classes) }
func (n *Node) EmailInput(classes ...string) *Input    { return n.typedInput("email", classes) }
func (n *Node) Radio(classes ...string) *Input         { return n.typedInput("radio", classes) }
func (n *Node) Checkbox(classes ...string) *Input      { return n.typedInput("checkbox", classes) }

// Hidden appends a hidden input carrying name and value.
func (n *Node) Hidden(name, value string) *Input {
	in := n.typedInput("hidden", nil)
	in.SetName(name)
	in.SetValue(value)
	return in
}

// Textarea appends a textarea with three rows.
func (n *Node) Textarea(classes ...string) *Textarea {
	t := appendEl(n, NewTextarea(n.ctx), classes)
	t.SetRows(3)
	return t
}

func (n *Node) Form(classes ...string) *Form {
	return appendEl(n, NewForm(n.ctx), classes)
}

// ScriptSrc appends an external script.
func (n *Node) ScriptSrc(src string) *Script {
	s := appendEl(n, NewScript(n.ctx), nil)
	s.SetSrc(src)
	return s
}

// ScriptInline appends a script whose body is js, unescaped.
func (n *Node) ScriptInline(js string) *Script {
	s := appendEl(n, NewScript(n.ctx), nil)
	s.AppendUnsafeText(js)
	return s
}

func (n *Node) Link(classes ...string) *Link {
	return appendEl(n, NewLink(n.ctx), classes)
}

// LinkCSS appends a stylesheet link.
func (n *Node) LinkCSS(href string) *Link {
	l := n.Link()
	l.SetHref(href)
	l.SetRel("stylesheet")
	return l
}

// Stylesheet is LinkCSS with rel written first.
func (n *Node) Stylesheet(url string) *Link {
	l := n.Link()
	l.SetRel("stylesheet")
	l.SetHref(url)
	return l
}

func (n *Node) Option(classes ...string) *Option {
	return appendEl(n, NewOption(n.ctx), classes)
}

func (n *Node) Meta(classes ...string) *Meta {
	return appendEl(n, NewMeta(n.ctx), classes)
}

// Keywords appends <meta name="keywords"> with words joined by commas.
func (n *Node) Keywords(words ...string) *Meta {
	m := n.Meta()
	m.SetName("keywords")
	m.SetContent(strings.Join(words, ","))
	return m
}

// Img appends an image.
func (n *Node) Img(classes ...string) *Image {
	return appendEl(n, NewImage(n.ctx), classes)
}

// BaseTag appends a <base> element.
func (n *Node) BaseTag(href string) *Base {
	b := appendEl(n, NewBase(n.ctx), nil)
	if href != "" {
		b.SetHref(href)
	}
	return b
}

func (n *Node) Th(classes ...string) *Th {
	return appendEl(n, NewTh(n.ctx), classes)
}

func (n *Node) Header(classes ...string) *Node   { return n.plain("header", classes) }
func (n *Node) Main(classes ...string) *Node     { return n.plain("main", classes) }
func (n *Node) Footer(classes ...string) *Node   { return n.plain("footer", classes) }
func (n *Node) Nav(classes ...string) *Node      { return n.plain("nav", classes) }
func (n *Node) Article(classes ...string) *Node  { return n.plain("article", classes) }
func (n *Node) Section(classes ...string) *Node  { return n.plain("section", classes) }
func (n *Node) Select(classes ...string) *Node   { return n.plain("select", classes) }
func (n *Node) Span(classes ...string) *Node     { return n.plain("span", classes) }
func (n *Node) Pre(classes ...string) *Node      { return n.plain("pre", classes) }
func (n *Node) Code(classes ...string) *Node     { return n.plain("code", classes) }
func (n *Node) Ol(classes ...string) *Node       { return n.plain("ol", classes) }
func (n *Node) Ul(classes ...string) *Node       { return n.plain("ul", classes) }
func (n *Node) Li(classes ...string) *Node       { return n.plain("li", classes) }
func (n *Node) H1(classes ...string) *Node       { return n.plain("h1", classes) }
func (n *Node) H2(classes ...string) *Node       { return n.plain("h2", classes) }
func (n *Node) H3(classes ...string) *Node       { return n.plain("h3", classes) }
func (n *Node) H4(classes ...string) *Node       { return n.plain("h4", classes) }
func (n *Node) H5(classes ...string) *Node       { return n.plain("h5", classes) }
func (n *Node) H6(classes ...string) *Node       { return n.plain("h6", classes) }
func (n *Node) P(classes ...string) *Node        { return n.plain("p", classes) }
func (n *Node) Dl(classes ...string) *Node       { return n.plain("dl", classes) }
func (n *Node) Dt(classes ...string) *Node       { return n.plain("dt", classes) }
func (n *Node) Dd(classes ...string) *Node       { return n.plain("dd", classes) }
func (n *Node) Table(classes ...string) *Node    { return n.plain("table", classes) }
func (n *Node) THead(classes ...string) *Node    { return n.plain("thead", classes) }
func (n *Node) TBody(classes ...string) *Node    { return n.plain("tbody", classes) }
func (n *Node) Tr(classes ...string) *Node       { return n.plain("tr", classes) }
func (n *Node) Td(classes ...string) *Node       { return n.plain("td", classes) }
func (n *Node) Col(classes ...string) *Node      { return n.plain("col", classes) }
func (n *Node) ColGroup(classes ...string) *Node { return n.plain("colgroup", classes) }
func (n *Node) Well(classes ...string) *Node     { return n.plain("well", classes) }
func (n *Node) Small(classes ...string) *Node    { return n.plain("small", classes) }
func (n *Node) Strong(classes ...string) *Node   { return n.plain("strong", classes) }
func (n *Node) Datalist(classes ...string) *Node { return n.plain("datalist", classes) }

func (n *Node) Br() *Node { return n.plain("br", nil) }
func (n *Node) Hr() *Node { return n.plain("hr", nil) }

// Font appends a <font> with size and color.
func (n *Node) Font(size int, color string) *Node {
	f := n.plain("font", nil)
	f.SetAttr("size", strconv.Itoa(size))
	f.SetAttr("color", color)
	return f
}

// StyleBlock appends a <style> element holding css verbatim.
func (n *Node) StyleBlock(css string) *Node {
	s := n.plain("style", nil)
	s.AppendUnsafeText(css)
	return s
}

// PArticle appends one indented paragraph per line of text.
func (n *Node) PArticle(text string) []*Node {
	lines := strings.Split(text, "\n")
	out := make([]*Node, 0, len(lines))
	for _, line := range lines {
		p := n.P()
		p.SetAttr("style", "text-indent:2em")
		p.AppendText(line)
		out = append(out, p)
	}
	return out
}
