package tag

// XMLDeclaration is emitted before an XMLRoot.
const XMLDeclaration = `<?xml version="1.0" ?>`

// XMLElement is an element of an XML tree. Children added through AddTag,
// Elem or the text helpers are XML nodes as well.
type XMLElement struct {
	*Node
}

// NewXMLElement creates a detached XML element.
func NewXMLElement(ctx Context, name string) *XMLElement {
	e := &XMLElement{Node: NewNode(ctx, name)}
	e.xml = true
	e.outer = e
	return e
}

// Elem appends a child element and returns it.
func (e *XMLElement) Elem(name string) *XMLElement {
	c := NewXMLElement(e.ctx, name)
	e.attach(c.Node)
	return c
}

// Text appends strictly escaped character data.
func (e *XMLElement) Text(s string) *Text {
	return e.AppendText(s)
}

// CDATA appends a CDATA section.
func (e *XMLElement) CDATA(s string) *CDATA {
	c := NewCDATA(e.ctx, s)
	e.attach(c.Node)
	return c
}

// XMLRoot is the document element of an XML tree.
type XMLRoot struct {
	*XMLElement
}

// NewXMLRoot creates an XML document with root element name.
func NewXMLRoot(ctx Context, name string) *XMLRoot {
	r := &XMLRoot{XMLElement: NewXMLElement(ctx, name)}
	r.outer = r
	return r
}

// Declaration implements Declarer.
func (r *XMLRoot) Declaration() string { return XMLDeclaration }
