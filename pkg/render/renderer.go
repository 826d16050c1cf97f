package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/markup/pkg/tag"
)

// Mode selects the output dialect.
type Mode uint8

const (
	// ModeAuto renders XML for XML trees and HTML otherwise.
	ModeAuto Mode = iota
	ModeHTML
	ModeXML
)

// DefaultIndent is one indentation level.
const DefaultIndent = "    "

// Config configures the renderer.
type Config struct {
	// Indent is the string used for each indentation level.
	// Defaults to four spaces if not specified.
	Indent string

	// Mode forces HTML or XML output. The zero value picks the dialect
	// from the root node.
	Mode Mode

	// Compact disables line splitting and indentation for the whole tree.
	Compact bool
}

// Renderer serializes node trees. A Renderer holds no per-render state and
// may be shared between goroutines.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = DefaultIndent
	}
	return &Renderer{config: config}
}

// HTML renders e with the default configuration.
func HTML(e tag.Element) string {
	s, _ := New(Config{}).RenderToString(e)
	return s
}

// RenderToString renders e to a string.
func (r *Renderer) RenderToString(e tag.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, e); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams e to w, including the declaration line of document
// roots. It returns the first write error.
func (r *Renderer) RenderToWriter(w io.Writer, e tag.Element) error {
	if e == nil {
		return nil
	}
	n := e.Base()
	if n == nil {
		return nil
	}
	o := &output{w: w, indent: r.config.Indent}
	if d, ok := n.Outer().(tag.Declarer); ok {
		o.write(d.Declaration())
		o.write("\n")
	}
	r.renderNode(o, n, 0, false, r.xml(n))
	return o.err
}

func (r *Renderer) xml(n *tag.Node) bool {
	switch r.config.Mode {
	case ModeHTML:
		return false
	case ModeXML:
		return true
	default:
		return n.IsXML()
	}
}

// renderNode dispatches rendering based on node kind. parentML is the
// multi-line state of the node's parent.
func (r *Renderer) renderNode(o *output, n *tag.Node, depth int, parentML, xml bool) {
	switch n.Kind() {
	case tag.KindElement:
		r.renderElement(o, n, depth, parentML, xml)
	case tag.KindText:
		r.renderText(o, n, depth, parentML, xml)
	case tag.KindCDATA:
		r.renderCDATA(o, n, depth, parentML)
	default:
		o.fail(fmt.Errorf("unknown node kind: %d", n.Kind()))
	}
}

func (r *Renderer) renderElement(o *output, n *tag.Node, depth int, parentML, xml bool) {
	name := n.TagName()
	ml := MultiLine(n) && !r.config.Compact

	if parentML {
		o.newline(depth)
	}
	o.write("<")
	o.write(name)
	r.renderAttributes(o, n, xml)

	children := n.Children()
	if len(children) == 0 {
		// XML has no must-close set: every empty element self-closes.
		if !xml && isMustClose(name) {
			o.write("></")
			o.write(name)
			o.write(">")
		} else {
			o.write("/>")
		}
		return
	}

	o.write(">")
	for _, c := range children {
		r.renderNode(o, c, depth+1, ml, xml)
	}
	if ml {
		o.newline(depth)
	}
	o.write("</")
	o.write(name)
	o.write(">")
}

// renderAttributes writes the attributes in insertion order. A non-empty
// class list replaces any stored class attribute.
func (r *Renderer) renderAttributes(o *output, n *tag.Node, xml bool) {
	classes := strings.Join(n.Classes(), " ")
	wroteClass := false
	name := n.TagName()

	n.Attrs().Each(func(key, value string) {
		if key == "class" && classes != "" {
			value = classes
			wroteClass = true
		}
		r.renderAttr(o, name, key, value, xml)
	})
	if classes != "" && !wroteClass {
		r.renderAttr(o, name, "class", classes, xml)
	}
}

// renderAttr writes the separating space only for pairs that survive, so an
// element whose attributes are all dropped renders as <input/>.
func (r *Renderer) renderAttr(o *output, tagName, key, value string, xml bool) {
	var pair string
	if xml {
		pair = key + `="` + escapeXMLAttr(value) + `"`
	} else {
		pair = attrPair(tagName, key, value)
	}
	if pair == "" {
		return
	}
	o.write(" ")
	o.write(pair)
}

// attrPair formats one HTML attribute, or returns "" when it is dropped.
func attrPair(tagName, key, value string) string {
	if singletonAttrs[key] {
		if value == key || truthyValues[value] {
			return key
		}
		return ""
	}
	if value == "" && !keepEmptyAttrs[[2]string{tagName, key}] {
		return ""
	}
	return key + `="` + escapeAttr(value) + `"`
}

func (r *Renderer) renderText(o *output, n *tag.Node, depth int, parentML, xml bool) {
	t, ok := n.Outer().(*tag.Text)
	if !ok {
		return
	}

	s := t.Content
	if !t.Unsafe {
		s = EscapeText(s, t.ForView && !xml)
	}

	p := n.Parent()
	if r.config.Compact || !t.FormatOutput || (p != nil && rawTextParents[p.TagName()]) {
		o.write(s)
		return
	}

	ml := t.MultiLine()
	for _, line := range splitLines(s) {
		if ml || parentML {
			o.newline(depth)
		}
		o.write(line)
	}
}

func (r *Renderer) renderCDATA(o *output, n *tag.Node, depth int, parentML bool) {
	c, ok := n.Outer().(*tag.CDATA)
	if !ok {
		return
	}
	if parentML && !r.config.Compact {
		o.newline(depth)
	}
	o.write("<![CDATA[")
	o.write(strings.ReplaceAll(c.Content, "]]>", "]]]]><![CDATA[>"))
	o.write("]]>")
}

// splitLines splits s on CRLF, LF and lone CR.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// output writes to w and keeps the first error. Later writes are skipped.
type output struct {
	w      io.Writer
	indent string
	err    error
}

func (o *output) write(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *output) newline(depth int) {
	o.write("\n")
	for i := 0; i < depth; i++ {
		o.write(o.indent)
	}
}

func (o *output) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
