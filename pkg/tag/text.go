package tag

import "strings"

// Tag names carried by the non-element node kinds.
const (
	TextTagName  = "text"
	CDATATagName = "_CDATA"
)

// Text is a leaf holding character data.
type Text struct {
	*Node

	// Content is the raw text.
	Content string
	// Unsafe disables escaping.
	Unsafe bool
	// FormatOutput enables line splitting and indentation.
	FormatOutput bool
	// ForView selects view escaping (spaces and line breaks become
	// entities). When false the text is escaped strictly.
	ForView bool
}

// NewText creates an escaped text node.
func NewText(ctx Context, content string) *Text {
	t := &Text{
		Node:         newNode(ctx, TextTagName, KindText),
		Content:      content,
		FormatOutput: true,
		ForView:      true,
	}
	t.outer = t
	return t
}

// NewUnsafeText creates a text node rendered without escaping.
func NewUnsafeText(ctx Context, content string) *Text {
	t := NewText(ctx, content)
	t.Unsafe = true
	return t
}

// MultiLine reports whether the content spans several lines.
func (t *Text) MultiLine() bool {
	return strings.ContainsAny(t.Content, "\r\n")
}

// CDATA is a leaf rendered verbatim inside a CDATA section.
type CDATA struct {
	*Node

	Content string
}

// NewCDATA creates a CDATA node.
func NewCDATA(ctx Context, content string) *CDATA {
	c := &CDATA{Node: newNode(ctx, CDATATagName, KindCDATA), Content: content}
	c.xml = true
	c.outer = c
	return c
}

// MultiLine reports whether the content spans several lines.
func (c *CDATA) MultiLine() bool {
	return strings.ContainsAny(c.Content, "\r\n")
}
