// Package tagtest provides testing helpers for code that builds trees.
//
// # Quick Start
//
//	func TestSignupForm(t *testing.T) {
//	    ctx := tagtest.NewCtx().WithParam("email", "a@b.c").Build()
//	    form := SignupForm(ctx)
//	    tagtest.ExpectAttribute(t, form, "value", "a@b.c")
//	    tagtest.ExpectBalanced(t, form)
//	}
//
// # Fluent Context Builder
//
// The context builder chains parameter setup and gives every built context
// its own ID sequence, so generated ids are stable from test to test:
//
//	ctx := tagtest.NewCtx().
//	    WithParam("id", "456").
//	    WithParams(map[string]string{"q": "go"}).
//	    Build()
//
// # Render Assertions
//
// Assert on rendered output:
//
//	tagtest.ExpectContains(t, el, "Welcome")
//	tagtest.ExpectNotContains(t, el, "Login")
//	tagtest.ExpectElement(t, el, "button")
//	tagtest.ExpectBalanced(t, el)
package tagtest
