package tagtest

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/tag"
)

// CtxBuilder allows fluent construction of test contexts.
type CtxBuilder struct {
	params tag.MapContext
}

// NewCtx creates a new context builder for testing.
func NewCtx() *CtxBuilder {
	return &CtxBuilder{params: make(tag.MapContext)}
}

// WithParam sets one context parameter.
func (b *CtxBuilder) WithParam(key, value string) *CtxBuilder {
	b.params[key] = value
	return b
}

// WithParams sets several context parameters.
func (b *CtxBuilder) WithParams(params map[string]string) *CtxBuilder {
	for k, v := range params {
		b.params[k] = v
	}
	return b
}

// Build returns a context with the parameters set so far and a fresh ID
// generator.
func (b *CtxBuilder) Build() tag.Context {
	params := make(tag.MapContext, len(b.params))
	for k, v := range b.params {
		params[k] = v
	}
	return tag.WithIDs(params, tag.NewIDGenerator())
}

// RenderToString renders e with the default configuration.
func RenderToString(e tag.Element) string {
	return render.HTML(e)
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, e tag.Element, expected string) {
	t.Helper()
	out := RenderToString(e)
	if !strings.Contains(out, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(out, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, e tag.Element, unexpected string) {
	t.Helper()
	out := RenderToString(e)
	if strings.Contains(out, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(out, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, e tag.Element, tagName string) {
	t.Helper()
	for _, tok := range tokens(RenderToString(e)) {
		if (tok.Type == html.StartTagToken || tok.Type == html.SelfClosingTagToken) && tok.Data == tagName {
			return
		}
	}
	t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tagName, truncate(RenderToString(e), 500))
}

// ExpectAttribute asserts that some element in the output carries the
// attribute with this value.
func ExpectAttribute(t testing.TB, e tag.Element, attr, value string) {
	t.Helper()
	for _, tok := range tokens(RenderToString(e)) {
		for _, a := range tok.Attr {
			if a.Key == attr && a.Val == value {
				return
			}
		}
	}
	t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(RenderToString(e), 500))
}

// ExpectBalanced asserts that every start tag in the output is closed in
// order. Self-closed and must-close elements both count as closed.
func ExpectBalanced(t testing.TB, e tag.Element) {
	t.Helper()
	out := RenderToString(e)
	var open []string
	for _, tok := range tokens(out) {
		switch tok.Type {
		case html.StartTagToken:
			open = append(open, tok.Data)
		case html.EndTagToken:
			if len(open) == 0 || open[len(open)-1] != tok.Data {
				t.Errorf("unexpected </%s> with open %v in:\n%s", tok.Data, open, truncate(out, 500))
				return
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		t.Errorf("unclosed elements %v in:\n%s", open, truncate(out, 500))
	}
}

// tokens splits markup into tokens, stopping at EOF or the first error.
func tokens(markup string) []html.Token {
	z := html.NewTokenizer(strings.NewReader(markup))
	var out []html.Token
	for {
		if z.Next() == html.ErrorToken {
			return out
		}
		out = append(out, z.Token())
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
