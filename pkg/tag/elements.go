package tag

// DoctypeHTML is emitted before a Document.
const DoctypeHTML = "<!DOCTYPE HTML>"

// Document is the <html> root of an HTML page.
type Document struct{ *Node }

// NewDocument creates an empty <html> document.
func NewDocument(ctx Context) *Document {
	d := &Document{NewNode(ctx, "html")}
	d.outer = d
	return d
}

// Declaration implements Declarer.
func (d *Document) Declaration() string { return DoctypeHTML }

func (d *Document) Lang() string     { return d.attrs.String("lang") }
func (d *Document) SetLang(l string) { d.attrs.SetString("lang", l) }

// Head returns the document's <head>, creating it on first use.
func (d *Document) Head() *Head { return single(d.Node, "head", NewHead) }

// Body returns the document's <body>, creating it on first use.
func (d *Document) Body() *Body { return single(d.Node, "body", NewBody) }

// single returns the first direct child of n with the given tag and type,
// appending one built by mk when there is none.
func single[T Element](n *Node, tagName string, mk func(Context) T) T {
	for _, c := range n.children {
		if t, ok := c.Outer().(T); ok && c.tagName == tagName {
			return t
		}
	}
	t := mk(n.ctx)
	n.attach(t.Base())
	return t
}

type Head struct{ *Node }

func NewHead(ctx Context) *Head {
	h := &Head{NewNode(ctx, "head")}
	h.outer = h
	return h
}

// Title replaces the page title with text and returns the <title> element.
func (h *Head) Title(text string) *Title {
	t := single(h.Node, "title", NewTitle)
	t.ClearChildren()
	t.AppendText(text)
	return t
}

type Body struct{ *Node }

func NewBody(ctx Context) *Body {
	b := &Body{NewNode(ctx, "body")}
	b.outer = b
	return b
}

type Title struct{ *Node }

func NewTitle(ctx Context) *Title {
	t := &Title{NewNode(ctx, "title")}
	t.outer = t
	return t
}

// Anchor is an <a> element.
type Anchor struct{ *Node }

func NewAnchor(ctx Context) *Anchor {
	a := &Anchor{NewNode(ctx, "a")}
	a.outer = a
	return a
}

func (a *Anchor) Href() string     { return a.attrs.String("href") }
func (a *Anchor) SetHref(v string) { a.attrs.SetString("href", v) }
func (a *Anchor) Role() string     { return a.attrs.String("role") }
func (a *Anchor) SetRole(v string) { a.attrs.SetString("role", v) }

type Button struct{ *Node }

func NewButton(ctx Context) *Button {
	b := &Button{NewNode(ctx, "button")}
	b.outer = b
	return b
}

func (b *Button) Type() string     { return b.attrs.String("type") }
func (b *Button) SetType(v string) { b.attrs.SetString("type", v) }
func (b *Button) Role() string     { return b.attrs.String("role") }
func (b *Button) SetRole(v string) { b.attrs.SetString("role", v) }

type Label struct{ *Node }

func NewLabel(ctx Context) *Label {
	l := &Label{NewNode(ctx, "label")}
	l.outer = l
	return l
}

// ForID is stored as the "for" attribute.
func (l *Label) ForID() string     { return l.attrs.String("forID") }
func (l *Label) SetForID(v string) { l.attrs.SetString("forID", v) }

// ForInputPre points the label at the <input> immediately before it,
// assigning the input an id when it has none. It does nothing when the
// previous sibling is not an input.
func (l *Label) ForInputPre() {
	p := l.parent
	if p == nil {
		return
	}
	i := p.indexOf(l.Node)
	if i < 1 {
		return
	}
	if prev := p.children[i-1]; prev.tagName == "input" {
		l.SetForID(prev.RequireID())
	}
}

type Input struct{ *Node }

func NewInput(ctx Context) *Input {
	in := &Input{NewNode(ctx, "input")}
	in.outer = in
	return in
}

func (in *Input) Type() string            { return in.attrs.String("type") }
func (in *Input) SetType(v string)        { in.attrs.SetString("type", v) }
func (in *Input) Value() string           { return in.attrs.String("value") }
func (in *Input) SetValue(v string)       { in.attrs.SetString("value", v) }
func (in *Input) Placeholder() string     { return in.attrs.String("placeholder") }
func (in *Input) SetPlaceholder(v string) { in.attrs.SetString("placeholder", v) }
func (in *Input) Step() string            { return in.attrs.String("step") }
func (in *Input) SetStep(v string)        { in.attrs.SetString("step", v) }
func (in *Input) Pattern() string         { return in.attrs.String("pattern") }
func (in *Input) SetPattern(v string)     { in.attrs.SetString("pattern", v) }

type Textarea struct{ *Node }

func NewTextarea(ctx Context) *Textarea {
	t := &Textarea{NewNode(ctx, "textarea")}
	t.outer = t
	return t
}

func (t *Textarea) Rows() int               { return t.attrs.Int("rows") }
func (t *Textarea) SetRows(n int)           { t.attrs.SetInt("rows", n) }
func (t *Textarea) Placeholder() string     { return t.attrs.String("placeholder") }
func (t *Textarea) SetPlaceholder(v string) { t.attrs.SetString("placeholder", v) }

type Form struct{ *Node }

func NewForm(ctx Context) *Form {
	f := &Form{NewNode(ctx, "form")}
	f.outer = f
	return f
}

func (f *Form) Action() string     { return f.attrs.String("action") }
func (f *Form) SetAction(v string) { f.attrs.SetString("action", v) }
func (f *Form) Method() string     { return f.attrs.String("method") }
func (f *Form) SetMethod(v string) { f.attrs.SetString("method", v) }

// Script is a <script> element. Its type defaults to text/javascript.
type Script struct{ *Node }

func NewScript(ctx Context) *Script {
	s := &Script{NewNode(ctx, "script")}
	s.outer = s
	s.SetType("text/javascript")
	return s
}

func (s *Script) Src() string      { return s.attrs.String("src") }
func (s *Script) SetSrc(v string)  { s.attrs.SetString("src", v) }
func (s *Script) Type() string     { return s.attrs.String("type") }
func (s *Script) SetType(v string) { s.attrs.SetString("type", v) }

// MultiLine puts inline script bodies on their own lines.
func (s *Script) MultiLine() bool { return len(s.children) > 0 }

type Link struct{ *Node }

func NewLink(ctx Context) *Link {
	l := &Link{NewNode(ctx, "link")}
	l.outer = l
	return l
}

func (l *Link) Rel() string      { return l.attrs.String("rel") }
func (l *Link) SetRel(v string)  { l.attrs.SetString("rel", v) }
func (l *Link) Href() string     { return l.attrs.String("href") }
func (l *Link) SetHref(v string) { l.attrs.SetString("href", v) }

type Option struct{ *Node }

func NewOption(ctx Context) *Option {
	o := &Option{NewNode(ctx, "option")}
	o.outer = o
	return o
}

func (o *Option) Value() string     { return o.attrs.String("value") }
func (o *Option) SetValue(v string) { o.attrs.SetString("value", v) }

type Meta struct{ *Node }

func NewMeta(ctx Context) *Meta {
	m := &Meta{NewNode(ctx, "meta")}
	m.outer = m
	return m
}

func (m *Meta) Content() string       { return m.attrs.String("content") }
func (m *Meta) SetContent(v string)   { m.attrs.SetString("content", v) }
func (m *Meta) Charset() string       { return m.attrs.String("charset") }
func (m *Meta) SetCharset(v string)   { m.attrs.SetString("charset", v) }
func (m *Meta) HTTPEquiv() string     { return m.attrs.String("httpEquiv") }
func (m *Meta) SetHTTPEquiv(v string) { m.attrs.SetString("httpEquiv", v) }

// Image is an <img> element.
type Image struct{ *Node }

func NewImage(ctx Context) *Image {
	i := &Image{NewNode(ctx, "img")}
	i.outer = i
	return i
}

func (i *Image) Src() string     { return i.attrs.String("src") }
func (i *Image) SetSrc(v string) { i.attrs.SetString("src", v) }

type Div struct{ *Node }

func NewDiv(ctx Context) *Div {
	d := &Div{NewNode(ctx, "div")}
	d.outer = d
	return d
}

func (d *Div) Role() string     { return d.attrs.String("role") }
func (d *Div) SetRole(v string) { d.attrs.SetString("role", v) }

// Base is a <base> element.
type Base struct{ *Node }

func NewBase(ctx Context) *Base {
	b := &Base{NewNode(ctx, "base")}
	b.outer = b
	return b
}

func (b *Base) Href() string     { return b.attrs.String("href") }
func (b *Base) SetHref(v string) { b.attrs.SetString("href", v) }

type Th struct{ *Node }

func NewTh(ctx Context) *Th {
	t := &Th{NewNode(ctx, "th")}
	t.outer = t
	return t
}

func (t *Th) Scope() string     { return t.attrs.String("scope") }
func (t *Th) SetScope(v string) { t.attrs.SetString("scope", v) }
