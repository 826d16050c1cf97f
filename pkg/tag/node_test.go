package tag

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/markup/internal/errors"
)

func TestAddSetsParent(t *testing.T) {
	root := NewNode(nil, "div")
	child := NewNode(nil, "span")

	if err := root.Add(child); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if child.Parent() != root {
		t.Errorf("parent = %v, want root", child.Parent())
	}
	if got := len(root.Children()); got != 1 {
		t.Errorf("len(children) = %d, want 1", got)
	}
}

func TestAddRejectsStructuralMisuse(t *testing.T) {
	a := NewNode(nil, "div")
	b := NewNode(nil, "div")
	c := NewNode(nil, "div")
	Add(a, b)
	Add(b, c)

	tests := []struct {
		name   string
		parent *Node
		child  Element
		want   error
		code   string
	}{
		{"self", a, a, ErrCycle, "E002"},
		{"ancestor", c, a, ErrCycle, "E002"},
		{"attached", a, c, ErrAlreadyAttached, "E003"},
		{"nil", a, nil, ErrNilNode, "E004"},
		{"leaf", NewText(nil, "x").Node, NewNode(nil, "b"), ErrLeaf, "E005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.Add(tt.child)
			if !stderrors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if got := errors.Code(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}

	if len(a.Children()) != 1 || len(b.Children()) != 1 {
		t.Error("rejected adds must leave the tree unchanged")
	}
}

func TestAddGenericPanics(t *testing.T) {
	a := NewNode(nil, "div")
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !stderrors.Is(err, ErrCycle) {
			t.Errorf("recovered %v, want ErrCycle", r)
		}
	}()
	Add(a, a)
}

func TestRemoveClearsParent(t *testing.T) {
	a := NewNode(nil, "div")
	b := NewNode(nil, "div")
	child := Add(a, NewNode(nil, "p"))

	child.RemoveFromParent()
	if child.Parent() != nil {
		t.Fatal("parent should be cleared")
	}
	if len(a.Children()) != 0 {
		t.Errorf("len(children) = %d, want 0", len(a.Children()))
	}
	if err := b.Add(child); err != nil {
		t.Errorf("re-adding a detached node: %v", err)
	}

	// Removing an absent child is a no-op.
	a.RemoveChild(child)
	a.RemoveChild(nil)
	if child.Parent() != b {
		t.Error("RemoveChild on a foreign child changed its parent")
	}
}

func TestClearChildren(t *testing.T) {
	a := NewNode(nil, "ul")
	x := Add(a, NewNode(nil, "li"))
	y := Add(a, NewNode(nil, "li"))
	a.ClearChildren()

	if len(a.Children()) != 0 {
		t.Fatal("children not cleared")
	}
	if x.Parent() != nil || y.Parent() != nil {
		t.Error("cleared children keep their parent")
	}
}

func TestAddTagUsesRegistry(t *testing.T) {
	root := NewNode(nil, "body")
	if _, ok := root.AddTag("input").(*Input); !ok {
		t.Error("AddTag(input) should return *Input")
	}
	e := root.AddTag("customwidget")
	if e.Base().TagName() != "customwidget" {
		t.Errorf("tag = %q, want customwidget", e.Base().TagName())
	}
	if e.Base().Parent() != root {
		t.Error("AddTag should attach the element")
	}
}

func TestOuterReturnsTypedElement(t *testing.T) {
	root := NewNode(nil, "form")
	in := root.Input()
	if got, ok := root.Children()[0].Outer().(*Input); !ok || got != in {
		t.Errorf("Outer() = %T, want the *Input", root.Children()[0].Outer())
	}
	plain := NewNode(nil, "div")
	if plain.Outer() != Element(plain) {
		t.Error("Outer of an untyped node should be the node")
	}
}

func TestBringToFirst(t *testing.T) {
	root := NewNode(nil, "div")
	a := root.P()
	b := root.Span()
	c := root.Ul()

	c.BringToFirst()
	want := []*Node{c, a, b}
	for i, n := range root.Children() {
		if n != want[i] {
			t.Errorf("children[%d] = <%s>, want <%s>", i, n.TagName(), want[i].TagName())
		}
	}
	NewNode(nil, "x").BringToFirst()
}

func TestScriptsToBottom(t *testing.T) {
	body := NewBody(nil)
	s1 := body.ScriptSrc("a.js")
	div := body.Div()
	s2 := div.ScriptSrc("b.js")
	p := body.P()

	body.ScriptsToBottom()

	got := body.Children()
	want := []*Node{div.Node, p, s1.Node, s2.Node}
	if len(got) != len(want) {
		t.Fatalf("len(children) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("children[%d] = <%s>, want <%s>", i, got[i].TagName(), want[i].TagName())
		}
	}
	if len(div.Children()) != 0 {
		t.Error("nested script should have moved")
	}
}

func TestRootAndSingle(t *testing.T) {
	root := NewNode(nil, "html")
	body := root.Single("body").Base()
	if again := root.Single("body").Base(); again != body {
		t.Error("Single should reuse the existing child")
	}
	p := body.P()
	if p.Root() != root {
		t.Error("Root() should return the topmost ancestor")
	}
}

func TestDataAttributes(t *testing.T) {
	n := NewNode(nil, "div")
	n.SetData("user", "42")
	n.SetData("data-role", "admin")

	if got := n.Attr("data-user"); got != "42" {
		t.Errorf("data-user = %q, want %q", got, "42")
	}
	if got := n.Data("role"); got != "admin" {
		t.Errorf("Data(role) = %q, want %q", got, "admin")
	}
}

func TestFlagHelpers(t *testing.T) {
	n := NewNode(nil, "input")
	n.Required()
	n.Readonly()
	n.Disabled()

	for key, want := range map[string]string{
		"required": "required",
		"readonly": "true",
		"disabled": "true",
	} {
		if got := n.Attr(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestRequireID(t *testing.T) {
	g := NewIDGenerator()
	ctx := WithIDs(nil, g)

	in := NewInput(ctx)
	if got := in.RequireID(); got != "input1" {
		t.Errorf("RequireID() = %q, want %q", got, "input1")
	}
	if got := in.RequireID(); got != "input1" {
		t.Errorf("second RequireID() = %q, want it unchanged", got)
	}

	other := NewNode(ctx, "div")
	other.SetID("main")
	if got := other.RequireID(); got != "main" {
		t.Errorf("RequireID() = %q, want existing id", got)
	}
}

func TestValueFromContext(t *testing.T) {
	ctx := MapContext{"email": "a@b.c"}

	in := NewInput(ctx)
	in.SetName("email")
	in.ValueFromContext()
	if got := in.Value(); got != "a@b.c" {
		t.Errorf("value = %q, want %q", got, "a@b.c")
	}

	missing := NewInput(ctx)
	missing.SetName("phone")
	missing.ValueFromContext()
	if missing.HasAttr("value") {
		t.Error("value should stay unset when the context has no entry")
	}

	unnamed := NewInput(ctx)
	unnamed.ValueFromContext()
	if unnamed.HasAttr("value") {
		t.Error("value should stay unset without a name")
	}
}
