// Package tag provides the mutable node tree used to build HTML and XML
// documents.
//
// A Node owns its attributes, its ordered children and its class list, and
// keeps a back-reference to its parent for upward traversal. Typed elements
// (Input, Label, Script, ...) embed *Node and add attribute accessors; the
// Registry maps tag names to their constructors so trees can be built from
// runtime strings and still produce typed elements.
//
// # Building
//
//	doc := tag.NewDocument(nil)
//	doc.Head().Title("Hello")
//	body := doc.Body()
//	body.Div("card").H1().AppendText("Hi")
//
// Nodes can also be created from a dynamic name:
//
//	el := body.AddTag("input") // *tag.Input
//	el.(*tag.Input).SetType("email")
//
// Rendering lives in package render.
//
// # Structure rules
//
// A node has at most one parent. Add rejects a node that is already attached
// (ErrAlreadyAttached) and a node that would become its own ancestor
// (ErrCycle). Removing a node clears its parent so it may be added again.
package tag
