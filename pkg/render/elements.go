package render

// mustCloseElements always get an explicit closing tag, even when empty.
// Every other empty element renders self-closed.
var mustCloseElements = map[string]bool{
	"a":        true,
	"button":   true,
	"datalist": true,
	"div":      true,
	"label":    true,
	"ol":       true,
	"option":   true,
	"p":        true,
	"script":   true,
	"select":   true,
	"span":     true,
	"textarea": true,
	"ul":       true,
}

// isMustClose returns true if the tag needs a closing tag when empty.
func isMustClose(tag string) bool {
	return mustCloseElements[tag]
}

// singletonAttrs render as a bare key when set.
var singletonAttrs = map[string]bool{
	"checked":    true,
	"disabled":   true,
	"multiple":   true,
	"novalidate": true,
	"readonly":   true,
	"required":   true,
	"selected":   true,
}

// truthyValues switch a singleton attribute on in addition to the key itself.
var truthyValues = map[string]bool{
	"true": true,
	"yes":  true,
	"on":   true,
	"1":    true,
}

// keepEmptyAttrs lists the tag/attribute pairs rendered even when empty.
var keepEmptyAttrs = map[[2]string]bool{
	{"col", "width"}:    true,
	{"option", "value"}: true,
}

// rawTextParents keep their text content on one unformatted run.
var rawTextParents = map[string]bool{
	"code":     true,
	"pre":      true,
	"textarea": true,
}
