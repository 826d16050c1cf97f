// Package render serializes tag trees to HTML and XML.
//
// Output is deterministic. Attributes keep their insertion order and layout
// follows a single rule: an element with two or more children puts each
// child on its own line, indented one level deeper; an element with one
// child inherits that child's layout; an empty element stays on one line.
// Text containing line breaks and inline scripts are always multi-line.
//
// # Basic Usage
//
//	doc := tag.NewDocument(nil)
//	doc.Head().Title("Hello")
//	doc.Body().Div().H1().AppendText("Hi")
//	html, err := render.New(render.Config{}).RenderToString(doc)
//
// To stream to a writer:
//
//	err := render.New(render.Config{}).RenderToWriter(w, doc)
//
// # Escaping
//
// Text is escaped in view mode by default: spaces become &nbsp; and line
// breaks become <br/>. Text with ForView unset, and all XML text, uses
// strict escaping. Unsafe text is written verbatim. Attribute values only
// have the double quote escaped.
//
// # Elements
//
// Empty elements render self-closed (<br/>) except for a fixed set such as
// div, p, span and script, which always get a closing tag. Boolean
// attributes like checked or required render as a bare name when set and
// are omitted otherwise.
//
// # XML
//
// Trees rooted at a tag.XMLRoot render as XML: the XML declaration comes
// first, attributes are always quoted and escaped, and empty elements
// self-close.
package render
