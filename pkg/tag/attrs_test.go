package tag

import (
	"testing"

	"github.com/vango-dev/markup/internal/errors"
)

func TestAttrsOrder(t *testing.T) {
	var a Attrs
	a.Set("b", "1")
	a.Set("a", "2")
	a.Set("c", "3")
	a.Set("b", "4")

	keys := a.Keys()
	want := []string{"b", "a", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if got := a.Get("b"); got != "4" {
		t.Errorf("b = %q, want last write %q", got, "4")
	}

	a.Remove("a")
	a.Remove("missing")
	if a.Len() != 2 || a.Has("a") {
		t.Errorf("after Remove: keys = %v", a.Keys())
	}
	if got := a.Get("unknown"); got != "" {
		t.Errorf("unknown key = %q, want empty", got)
	}
}

func TestBoolProp(t *testing.T) {
	var a Attrs
	a.SetBool("checked", true)
	if got := a.Get("checked"); got != "checked" {
		t.Errorf("stored %q, want key as value", got)
	}
	if !a.Bool("checked") {
		t.Error("Bool(checked) = false, want true")
	}

	a.Set("checked", "yes")
	if a.Bool("checked") {
		t.Error("Bool reads true only when value equals the key")
	}

	a.SetBool("checked", false)
	if a.Has("checked") {
		t.Error("false should remove the attribute")
	}
}

func TestIntProp(t *testing.T) {
	tests := []struct {
		stored string
		want   int
	}{
		{"3", 3},
		{"", 0},
		{"abc", 0},
		{"-7", -7},
	}
	for _, tt := range tests {
		var a Attrs
		if tt.stored != "" {
			a.Set("rows", tt.stored)
		}
		if got := a.Int("rows"); got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.stored, got, tt.want)
		}
	}

	var a Attrs
	a.SetInt("rows", 12)
	if got := a.Get("rows"); got != "12" {
		t.Errorf("stored %q, want %q", got, "12")
	}
}

func TestWireNames(t *testing.T) {
	var a Attrs
	a.SetString("forID", "email")
	if got := a.Get("for"); got != "email" {
		t.Errorf("for = %q, want %q", got, "email")
	}
	if a.Has("forID") {
		t.Error("property name must not be stored")
	}

	SetProp(&a, "httpEquiv", "refresh")
	if got := Prop[string](&a, "httpEquiv"); got != "refresh" {
		t.Errorf("httpEquiv = %q", got)
	}
	if got := WireName("plain"); got != "plain" {
		t.Errorf("WireName(plain) = %q", got)
	}

	RegisterWireName("ariaLabel", "aria-label")
	a.SetString("ariaLabel", "Close")
	if got := a.Get("aria-label"); got != "Close" {
		t.Errorf("aria-label = %q", got)
	}
}

func TestPropUnsupportedType(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*errors.MarkupError)
		if !ok {
			t.Fatalf("recovered %T, want *errors.MarkupError", r)
		}
		if err.Code != "E001" {
			t.Errorf("code = %q, want E001", err.Code)
		}
	}()
	var a Attrs
	Prop[float64](&a, "ratio")
}
