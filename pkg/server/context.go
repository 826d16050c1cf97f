package server

import (
	"net/http"
	"net/url"

	"github.com/vango-dev/markup/pkg/tag"
)

// requestContext exposes request values to the tree under construction.
// Each request gets its own ID sequence, so equal requests render equal
// markup.
type requestContext struct {
	values url.Values
	ids    *tag.IDGenerator
}

// RequestContext returns a tag.Context whose parameters are the request's
// form values, query parameters included.
func RequestContext(r *http.Request) tag.Context {
	values := r.URL.Query()
	if err := r.ParseForm(); err == nil {
		values = r.Form
	}
	return &requestContext{values: values, ids: tag.NewIDGenerator()}
}

func (c *requestContext) ParamValue(name string) (string, bool) {
	if _, ok := c.values[name]; !ok {
		return "", false
	}
	return c.values.Get(name), true
}

func (c *requestContext) IDs() *tag.IDGenerator {
	return c.ids
}
