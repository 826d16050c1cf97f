package render

import "strings"

// Escape escapes text strictly: < > " ' & and / become entities. Whitespace
// and line breaks pass through unchanged.
func Escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if !writeEntity(&buf, s[i]) {
			buf.WriteByte(s[i])
		}
	}

	return buf.String()
}

// EscapeView escapes text for display. In addition to Escape, every space
// becomes &nbsp; and every line break becomes <br/>. A CRLF pair yields a
// single <br/>.
func EscapeView(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ':
			buf.WriteString("&nbsp;")
		case '\r':
			buf.WriteString("<br/>")
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\n':
			buf.WriteString("<br/>")
		default:
			if !writeEntity(&buf, c) {
				buf.WriteByte(c)
			}
		}
	}

	return buf.String()
}

// EscapeText escapes s in view mode when forView is set, strictly otherwise.
func EscapeText(s string, forView bool) string {
	if forView {
		return EscapeView(s)
	}
	return Escape(s)
}

// writeEntity handles ASCII bytes only, so multi-byte and invalid UTF-8
// sequences pass through untouched.
func writeEntity(buf *strings.Builder, c byte) bool {
	switch c {
	case '<':
		buf.WriteString("&lt;")
	case '>':
		buf.WriteString("&gt;")
	case '"':
		buf.WriteString("&quot;")
	case '\'':
		buf.WriteString("&#x27;")
	case '&':
		buf.WriteString("&amp;")
	case '/':
		buf.WriteString("&#x2F;")
	default:
		return false
	}
	return true
}

// escapeAttr escapes an HTML attribute value. Only the double quote is
// replaced.
func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

var xmlAttrReplacer = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// escapeXMLAttr escapes an XML attribute value.
func escapeXMLAttr(s string) string {
	return xmlAttrReplacer.Replace(s)
}
