package tag

import (
	"strings"

	"github.com/vango-dev/markup/internal/errors"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <input>, etc.
	KindText                // Text content
	KindCDATA               // XML CDATA section
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindCDATA:
		return "CDATA"
	default:
		return "Unknown"
	}
}

// Structural errors returned by Add.
var (
	ErrCycle           error = errors.New("E002")
	ErrAlreadyAttached error = errors.New("E003")
	ErrNilNode         error = errors.New("E004")
	ErrLeaf            error = errors.New("E005")
)

// Element is implemented by *Node and by every typed element embedding it.
type Element interface {
	Base() *Node
}

// MultiLiner is implemented by elements that decide their own multi-line
// layout instead of inheriting it from their children.
type MultiLiner interface {
	MultiLine() bool
}

// Declarer is implemented by document roots that emit a declaration line
// (such as a DOCTYPE) before their markup.
type Declarer interface {
	Declaration() string
}

// Node is one element of a markup tree.
type Node struct {
	ctx      Context
	tagName  string
	kind     Kind
	xml      bool
	attrs    Attrs
	classes  []string
	children []*Node
	parent   *Node
	outer    Element
}

// NewNode creates an untyped element. A nil ctx is replaced by DefaultContext.
func NewNode(ctx Context, tagName string) *Node {
	return newNode(ctx, tagName, KindElement)
}

func newNode(ctx Context, tagName string, kind Kind) *Node {
	if ctx == nil {
		ctx = DefaultContext{}
	}
	return &Node{ctx: ctx, tagName: tagName, kind: kind}
}

// Base implements Element.
func (n *Node) Base() *Node { return n }

// Outer returns the typed element wrapping n, or n itself for untyped nodes.
func (n *Node) Outer() Element {
	if n.outer != nil {
		return n.outer
	}
	return n
}

// Context returns the context the node was created with.
func (n *Node) Context() Context { return n.ctx }

// TagName returns the element's tag name.
func (n *Node) TagName() string { return n.tagName }

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// IsXML reports whether the node belongs to an XML tree.
func (n *Node) IsXML() bool { return n.xml }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in document order. The slice is owned by
// the node and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Root returns the topmost ancestor, or n itself.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Add appends child and makes n its parent. It fails when child already has a
// parent, when child is n or one of n's ancestors, and when n is a leaf.
func (n *Node) Add(child Element) error {
	if child == nil {
		return ErrNilNode
	}
	c := child.Base()
	if c == nil {
		return ErrNilNode
	}
	if n.kind != KindElement {
		return errors.New("E005").WithDetailf("cannot add <%s> to a %s node", c.tagName, n.kind)
	}
	if c.parent != nil {
		return errors.New("E003").WithDetailf("<%s> already belongs to <%s>", c.tagName, c.parent.tagName)
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return errors.New("E002").WithDetailf("<%s> is an ancestor of <%s>", c.tagName, n.tagName)
		}
	}
	n.attach(c)
	return nil
}

// Add appends child to parent and returns it for chaining. Structural errors
// are programming errors and panic.
func Add[T Element](parent Element, child T) T {
	if err := parent.Base().Add(child); err != nil {
		panic(err)
	}
	return child
}

func (n *Node) attach(c *Node) {
	n.children = append(n.children, c)
	c.parent = n
}

// AddTag creates an element for name through the default registry and appends
// it. Inside an XML tree the new element is always an XML element.
func (n *Node) AddTag(name string) Element {
	var e Element
	if n.xml {
		e = NewXMLElement(n.ctx, name)
	} else {
		e = Create(n.ctx, name)
	}
	return Add(n, e)
}

// Single returns the first direct child named tagName, adding one when none
// exists.
func (n *Node) Single(tagName string) Element {
	for _, c := range n.children {
		if c.tagName == tagName {
			return c.Outer()
		}
	}
	return n.AddTag(tagName)
}

// RemoveFromParent detaches n from its parent.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// RemoveChild detaches child from n. It does nothing if child is not a
// direct child of n.
func (n *Node) RemoveChild(child Element) {
	if child == nil {
		return
	}
	c := child.Base()
	for i, x := range n.children {
		if x == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// ClearChildren detaches every child.
func (n *Node) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// BringToFirst moves n to the front of its parent's children.
func (n *Node) BringToFirst() {
	p := n.parent
	if p == nil {
		return
	}
	i := p.indexOf(n)
	if i <= 0 {
		return
	}
	copy(p.children[1:i+1], p.children[:i])
	p.children[0] = n
}

func (n *Node) indexOf(c *Node) int {
	for i, x := range n.children {
		if x == c {
			return i
		}
	}
	return -1
}

// ScriptsToBottom moves every <script> in the subtree to the end of n's
// children, keeping their relative order.
func (n *Node) ScriptsToBottom() {
	for _, s := range n.Filter(TagIs("script")) {
		s.RemoveFromParent()
		n.attach(s)
	}
}

// AppendText appends an escaped text node. Inside an XML tree the text is
// escaped strictly.
func (n *Node) AppendText(text string) *Text {
	t := NewText(n.ctx, text)
	t.xml = n.xml
	if n.xml {
		t.ForView = false
	}
	return Add(n, t)
}

// AppendUnsafeText appends a text node rendered verbatim.
func (n *Node) AppendUnsafeText(text string) *Text {
	t := NewUnsafeText(n.ctx, text)
	t.xml = n.xml
	return Add(n, t)
}

// Attrs returns the node's attribute store.
func (n *Node) Attrs() *Attrs { return &n.attrs }

// Attr returns the attribute value for key, or "".
func (n *Node) Attr(key string) string { return n.attrs.Get(key) }

// SetAttr sets an attribute.
func (n *Node) SetAttr(key, value string) { n.attrs.Set(key, value) }

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(key string) { n.attrs.Remove(key) }

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(key string) bool { return n.attrs.Has(key) }

func (n *Node) ID() string           { return n.attrs.String("id") }
func (n *Node) SetID(id string)      { n.attrs.SetString("id", id) }
func (n *Node) Name() string         { return n.attrs.String("name") }
func (n *Node) SetName(name string)  { n.attrs.SetString("name", name) }
func (n *Node) Style() string        { return n.attrs.String("style") }
func (n *Node) SetStyle(css string)  { n.attrs.SetString("style", css) }
func (n *Node) OnClick() string      { return n.attrs.String("onclick") }
func (n *Node) SetOnClick(js string) { n.attrs.SetString("onclick", js) }

// Data returns a data-* attribute. The "data-" prefix is optional.
func (n *Node) Data(name string) string {
	return n.attrs.Get(dataKey(name))
}

// SetData sets a data-* attribute. The "data-" prefix is optional.
func (n *Node) SetData(name, value string) {
	n.attrs.Set(dataKey(name), value)
}

func dataKey(name string) string {
	if strings.HasPrefix(name, "data-") {
		return name
	}
	return "data-" + name
}

// Required marks the element as required.
func (n *Node) Required() { n.attrs.Set("required", "required") }

// Readonly marks the element as read-only.
func (n *Node) Readonly() { n.attrs.Set("readonly", "true") }

// Disabled marks the element as disabled.
func (n *Node) Disabled() { n.attrs.Set("disabled", "true") }

// RequireID returns the element's id, generating and storing one prefixed
// with the tag name when it has none.
func (n *Node) RequireID() string {
	if id := n.ID(); id != "" {
		return id
	}
	id := n.ids().Next(n.tagName)
	n.SetID(id)
	return id
}

func (n *Node) ids() *IDGenerator {
	if s, ok := n.ctx.(IDSource); ok {
		if g := s.IDs(); g != nil {
			return g
		}
	}
	return DefaultIDs
}

// ValueFromContext sets the value attribute from the context entry matching
// the element's name. Nothing happens when the name is empty or the context
// has no entry.
func (n *Node) ValueFromContext() {
	name := n.Name()
	if name == "" {
		return
	}
	if v, ok := n.ctx.ParamValue(name); ok {
		n.attrs.Set("value", v)
	}
}
