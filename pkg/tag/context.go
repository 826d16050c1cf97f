package tag

// Context supplies external values to the nodes of a tree, such as request
// parameters used to prefill form inputs.
type Context interface {
	// ParamValue returns the value registered under name, if any.
	ParamValue(name string) (string, bool)
}

// IDSource is implemented by contexts that carry their own ID generator.
// Nodes created with such a context draw generated ids from it instead of
// DefaultIDs.
type IDSource interface {
	IDs() *IDGenerator
}

// DefaultContext has no values.
type DefaultContext struct{}

// ParamValue implements Context.
func (DefaultContext) ParamValue(string) (string, bool) { return "", false }

// MapContext serves values from a map.
type MapContext map[string]string

// ParamValue implements Context.
func (m MapContext) ParamValue(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// WithIDs returns a context that delegates lookups to ctx and generates ids
// from g.
func WithIDs(ctx Context, g *IDGenerator) Context {
	if ctx == nil {
		ctx = DefaultContext{}
	}
	return idContext{Context: ctx, ids: g}
}

type idContext struct {
	Context
	ids *IDGenerator
}

func (c idContext) IDs() *IDGenerator { return c.ids }
