package tag

// plainTags have no typed wrapper; the registry builds generic nodes for
// them.
var plainTags = []string{
	"main", "header", "footer", "nav", "article", "section", "select",
	"span", "hr", "br", "pre", "code", "ol", "ul", "li",
	"h1", "h2", "h3", "h4", "h5", "h6", "p", "dl", "dt", "dd",
	"table", "thead", "tbody", "tr", "td", "col", "colgroup",
	"well", "small", "font", "strong", "datalist", "style",
}

func typed[T Element](mk func(Context) T) Constructor {
	return func(ctx Context, _ string) Element { return mk(ctx) }
}

// catalog returns the constructors of the built-in HTML elements.
func catalog() map[string]Constructor {
	m := map[string]Constructor{
		"html":     typed(NewDocument),
		"head":     typed(NewHead),
		"body":     typed(NewBody),
		"title":    typed(NewTitle),
		"a":        typed(NewAnchor),
		"button":   typed(NewButton),
		"label":    typed(NewLabel),
		"input":    typed(NewInput),
		"textarea": typed(NewTextarea),
		"form":     typed(NewForm),
		"script":   typed(NewScript),
		"link":     typed(NewLink),
		"option":   typed(NewOption),
		"meta":     typed(NewMeta),
		"img":      typed(NewImage),
		"div":      typed(NewDiv),
		"base":     typed(NewBase),
		"th":       typed(NewTh),
	}
	for _, name := range plainTags {
		m[name] = Generic
	}
	return m
}
