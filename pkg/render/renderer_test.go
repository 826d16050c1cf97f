package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/markup/pkg/tag"
)

func mustRender(t *testing.T, r *Renderer, e tag.Element) string {
	t.Helper()
	s, err := r.RenderToString(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestRenderEmptyElements(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"br", "<br/>"},
		{"hr", "<hr/>"},
		{"img", "<img/>"},
		{"div", "<div></div>"},
		{"p", "<p></p>"},
		{"script", `<script type="text/javascript"></script>`},
		{"textarea", "<textarea></textarea>"},
		{"a", "<a></a>"},
		{"li", "<li/>"},
	}
	r := New(Config{})
	for _, tt := range tests {
		if got := mustRender(t, r, tag.Create(nil, tt.tag)); got != tt.want {
			t.Errorf("<%s> = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestRenderMultiLinePropagation(t *testing.T) {
	r := New(Config{})

	single := tag.NewDiv(nil)
	single.Span().AppendText("x")
	if got := mustRender(t, r, single); got != "<div><span>x</span></div>" {
		t.Errorf("single child = %q", got)
	}

	branching := tag.NewDiv(nil)
	branching.P()
	branching.P()
	want := "<div>\n    <p></p>\n    <p></p>\n</div>"
	if got := mustRender(t, r, branching); got != want {
		t.Errorf("two children = %q, want %q", got, want)
	}

	nested := tag.NewNode(nil, "section")
	nested.Add(branching)
	want = "<section>\n    <div>\n        <p></p>\n        <p></p>\n    </div>\n</section>"
	if got := mustRender(t, r, nested); got != want {
		t.Errorf("inherited = %q, want %q", got, want)
	}
}

func TestMultiLine(t *testing.T) {
	leaf := tag.NewNode(nil, "p")
	if MultiLine(leaf) {
		t.Error("empty element should be single-line")
	}
	if MultiLine(nil) {
		t.Error("nil should be single-line")
	}
	txt := tag.NewNode(nil, "p")
	txt.AppendText("a\rb")
	if !MultiLine(txt) {
		t.Error("a single multi-line text child should make the parent multi-line")
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"checked", "<input checked/>"},
		{"true", "<input checked/>"},
		{"yes", "<input checked/>"},
		{"on", "<input checked/>"},
		{"1", "<input checked/>"},
		{"false", "<input/>"},
		{"", "<input/>"},
		{"no", "<input/>"},
	}
	r := New(Config{})
	for _, tt := range tests {
		in := tag.NewInput(nil)
		in.SetAttr("checked", tt.value)
		if got := mustRender(t, r, in); got != tt.want {
			t.Errorf("checked=%q renders %q, want %q", tt.value, got, tt.want)
		}
	}

	in := tag.NewInput(nil)
	in.Attrs().SetBool("required", true)
	in.Attrs().SetBool("disabled", true)
	in.Attrs().SetBool("disabled", false)
	if got := mustRender(t, r, in); got != "<input required/>" {
		t.Errorf("got %q", got)
	}

	dropped := tag.NewInput(nil)
	dropped.SetAttr("value", "")
	dropped.SetAttr("disabled", "no")
	dropped.SetAttr("readonly", "off")
	if got := mustRender(t, r, dropped); got != "<input/>" {
		t.Errorf("all attributes dropped = %q, want <input/>", got)
	}
}

func TestRenderAttributes(t *testing.T) {
	r := New(Config{})

	div := tag.NewDiv(nil)
	div.SetAttr("title", `say "hi" <b>`)
	div.SetAttr("data-x", "")
	div.SetID("main")
	if got := mustRender(t, r, div); got != `<div title="say &quot;hi&quot; <b>" id="main"></div>` {
		t.Errorf("got %q", got)
	}

	opt := tag.NewOption(nil)
	opt.SetValue("")
	if got := mustRender(t, r, opt); got != `<option value=""></option>` {
		t.Errorf("option = %q", got)
	}

	col := tag.NewNode(nil, "col")
	col.SetAttr("width", "")
	col.SetAttr("span", "")
	if got := mustRender(t, r, col); got != `<col width=""/>` {
		t.Errorf("col = %q", got)
	}
}

func TestRenderClassList(t *testing.T) {
	r := New(Config{})

	n := tag.NewNode(nil, "span")
	n.SetAttr("class", "old")
	n.SetAttr("id", "s")
	n.ClassAppend("a b")
	if got := mustRender(t, r, n); got != `<span class="a b" id="s"></span>` {
		t.Errorf("got %q", got)
	}
	if n.Attr("class") != "old" {
		t.Error("rendering must not modify the node")
	}

	m := tag.NewNode(nil, "span")
	m.SetAttr("id", "s")
	m.ClassAppend("x")
	if got := mustRender(t, r, m); got != `<span id="s" class="x"></span>` {
		t.Errorf("got %q", got)
	}

	keep := tag.NewNode(nil, "span")
	keep.SetAttr("class", "stored")
	if got := mustRender(t, r, keep); got != `<span class="stored"></span>` {
		t.Errorf("empty class list should keep the attribute, got %q", got)
	}
}

func TestRenderText(t *testing.T) {
	r := New(Config{})

	tests := []struct {
		name  string
		build func() tag.Element
		want  string
	}{
		{
			name: "view escaping",
			build: func() tag.Element {
				p := tag.NewNode(nil, "p")
				p.AppendText("a <b>")
				return p
			},
			want: "<p>a&nbsp;&lt;b&gt;</p>",
		},
		{
			name: "strict multi-line text",
			build: func() tag.Element {
				d := tag.NewDiv(nil)
				d.AppendText("a\nb").ForView = false
				return d
			},
			want: "<div>\n    a\n    b\n</div>",
		},
		{
			name: "view multi-line text",
			build: func() tag.Element {
				d := tag.NewDiv(nil)
				d.AppendText("a\r\nb")
				return d
			},
			want: "<div>\n    a<br/>b\n</div>",
		},
		{
			name: "unformatted",
			build: func() tag.Element {
				d := tag.NewDiv(nil)
				txt := d.AppendText("a\nb")
				txt.ForView = false
				txt.FormatOutput = false
				return d
			},
			want: "<div>a\nb\n</div>",
		},
		{
			name: "pre keeps lines",
			build: func() tag.Element {
				p := tag.NewNode(nil, "pre")
				p.AppendText("x = 1\ny = 2").ForView = false
				return p
			},
			want: "<pre>x = 1\ny = 2\n</pre>",
		},
		{
			name: "unsafe",
			build: func() tag.Element {
				d := tag.NewDiv(nil)
				d.AppendUnsafeText("<b>bold</b>")
				return d
			},
			want: "<div><b>bold</b></div>",
		},
		{
			name: "text beside element",
			build: func() tag.Element {
				l := tag.NewLabel(nil)
				l.AppendText("Name")
				l.Input()
				return l
			},
			want: "<label>\n    Name\n    <input/>\n</label>",
		},
		{
			name: "inline script",
			build: func() tag.Element {
				b := tag.NewNode(nil, "body")
				b.ScriptInline("run();")
				return b
			},
			want: "<body>\n    <script type=\"text/javascript\">\n        run();\n    </script>\n</body>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, r, tt.build()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	doc := tag.NewDocument(nil)
	doc.Head().Title("Hello")
	body := doc.Body()
	body.Div().H1().AppendText("Hi")
	body.P().AppendText("Hello World")

	want := "<!DOCTYPE HTML>\n" +
		"<html>\n" +
		"    <head><title>Hello</title></head>\n" +
		"    <body>\n" +
		"        <div><h1>Hi</h1></div>\n" +
		"        <p>Hello&nbsp;World</p>\n" +
		"    </body>\n" +
		"</html>"

	if got := HTML(doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIndentAndCompact(t *testing.T) {
	doc := tag.NewDocument(nil)
	doc.SetLang("en")
	doc.Head().Title("T")
	doc.Body().P()

	tabbed := mustRender(t, New(Config{Indent: "\t"}), doc)
	if !strings.Contains(tabbed, "\n\t<body><p></p></body>") {
		t.Errorf("tab indent not applied: %q", tabbed)
	}

	compact := mustRender(t, New(Config{Compact: true}), doc)
	want := "<!DOCTYPE HTML>\n<html lang=\"en\"><head><title>T</title></head><body><p></p></body></html>"
	if compact != want {
		t.Errorf("compact = %q, want %q", compact, want)
	}
}

func TestRenderRegistryFallback(t *testing.T) {
	e := tag.Create(nil, "customwidget")
	if got := HTML(e); got != "<customwidget/>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderXML(t *testing.T) {
	root := tag.NewXMLRoot(nil, "users")
	u := root.Elem("user")
	u.SetAttr("age", "9")
	u.SetAttr("note", "")
	u.SetAttr("checked", "false")
	u.Text("a<b")
	root.Elem("data").CDATA("x]]>y")
	root.AddTag("div")

	want := `<?xml version="1.0" ?>` + "\n" +
		"<users>\n" +
		`    <user age="9" note="" checked="false">a&lt;b</user>` + "\n" +
		"    <data><![CDATA[x]]]]><![CDATA[>y]]></data>\n" +
		"    <div/>\n" +
		"</users>"

	if got := HTML(root); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderXMLIgnoresHTMLRules(t *testing.T) {
	root := tag.NewXMLRoot(nil, "form")
	root.AddTag("div")
	root.AddTag("textarea")
	in := root.Elem("input")
	in.SetAttr("value", "")

	got := mustRender(t, New(Config{Compact: true}), root)
	for _, want := range []string{"<div/>", "<textarea/>", `<input value=""/>`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestRenderModeOverride(t *testing.T) {
	n := tag.NewNode(nil, "option")
	n.SetAttr("selected", "yes")
	n.SetAttr("label", "")

	if got := mustRender(t, New(Config{Mode: ModeXML}), n); got != `<option selected="yes" label=""/>` {
		t.Errorf("xml = %q", got)
	}
	if got := mustRender(t, New(Config{Mode: ModeHTML}), n); got != `<option selected></option>` {
		t.Errorf("html = %q", got)
	}
}

type failWriter struct{ n int }

var errWrite = errors.New("disk full")

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	if f.n > 2 {
		return 0, errWrite
	}
	return len(p), nil
}

func TestRenderToWriterError(t *testing.T) {
	doc := tag.NewDocument(nil)
	doc.Body().P().AppendText("x")

	err := New(Config{}).RenderToWriter(&failWriter{}, doc)
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestRenderNil(t *testing.T) {
	s, err := New(Config{}).RenderToString(nil)
	if err != nil || s != "" {
		t.Errorf("got %q, %v", s, err)
	}
}
