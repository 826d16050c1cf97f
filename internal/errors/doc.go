// Package errors provides structured, actionable error messages for markup.
//
// Every error carries a stable code (e.g. "E002") that maps to a short
// message, a category and a longer explanation:
//
//   - tree: structural misuse of the node tree (cycles, double attachment)
//   - property: typed attribute access with an unsupported type
//   - document: malformed document descriptions
//   - config: invalid configuration files
//   - publish: failures while uploading rendered documents
//
// # Usage
//
//	err := errors.New("E002").
//	    WithDetail("<div> is an ancestor of <body>").
//	    WithSuggestion("Detach the node before adding it elsewhere")
//
//	fmt.Println(err.Format())
//
// Errors created from the same code compare equal under errors.Is, so callers
// can test against the exported sentinels of the packages that raise them.
package errors
