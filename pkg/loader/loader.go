// Package loader builds tag trees from YAML or JSON document descriptions.
//
// A description is a tree of nodes:
//
//	lang: en
//	title: Welcome
//	tag: html
//	children:
//	  - tag: body
//	    children:
//	      - tag: h1
//	        class: title big
//	        children:
//	          - text: Hello
//	      - tag: input
//	        name: email
//	        fromContext: true
//
// Elements are created through the tag registry, so typed elements such as
// *tag.Input come back for known names and unknown names become generic
// nodes. Attributes from the attrs map are applied in key order after id
// and name.
package loader

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/tag"
)

// Extensions are the description file extensions, probed in order.
var Extensions = []string{".yaml", ".yml", ".json"}

// Parse decodes a description. JSON input is accepted since YAML is a
// superset of JSON.
func Parse(data []byte) (*Description, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("E020").WithDetail(err.Error())
	}
	if raw == nil {
		return nil, errors.New("E022").WithDetail("the description is empty")
	}

	var d Description
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(" "),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &d,
	})
	if err != nil {
		return nil, errors.New("E020").Wrap(err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.New("E020").WithDetail(err.Error())
	}
	return &d, nil
}

// Load decodes a description from r and builds its tree.
func Load(r io.Reader, ctx tag.Context) (tag.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E020").Wrap(err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return d.Build(ctx)
}

// LoadBytes is Load for an in-memory description.
func LoadBytes(data []byte, ctx tag.Context) (tag.Element, error) {
	return Load(bytes.NewReader(data), ctx)
}

// Build creates the tree described by d.
func (d *Description) Build(ctx tag.Context) (tag.Element, error) {
	if err := d.NodeSpec.check("root", d.XML); err != nil {
		return nil, err
	}
	if d.Tag == "" {
		return nil, errors.New("E022").WithDetail("root: the root must be an element")
	}

	var root tag.Element
	if d.XML {
		root = tag.NewXMLRoot(ctx, d.Tag)
	} else {
		root = tag.Create(ctx, d.Tag)
	}

	d.NodeSpec.fill(root.Base())

	if doc, ok := root.(*tag.Document); ok {
		if d.Lang != "" {
			doc.SetLang(d.Lang)
		}
		if d.Title != "" {
			head := doc.Head()
			head.BringToFirst()
			head.Title(d.Title)
		}
	}
	return root, nil
}

// check validates s and its subtree without building anything.
func (s *NodeSpec) check(where string, xml bool) error {
	switch n := s.kinds(); {
	case n == 0:
		return errors.New("E022").WithDetail(where)
	case n > 1:
		return errors.New("E021").WithDetail(where)
	}
	if s.CDATA != nil && !xml {
		return errors.New("E023").WithDetail(where)
	}
	if s.Tag == "" && len(s.Children) > 0 {
		return errors.New("E021").WithDetailf("%s: text nodes cannot have children", where)
	}
	for i := range s.Children {
		c := &s.Children[i]
		if err := c.check(childPath(where, c, i), xml); err != nil {
			return err
		}
	}
	return nil
}

// fill applies attributes and appends the children of s to el. s must have
// passed check.
func (s *NodeSpec) fill(el *tag.Node) {
	if s.ID != "" {
		el.SetID(s.ID)
	}
	if s.Name != "" {
		el.SetName(s.Name)
	}
	el.ClassAppend(s.Class...)

	keys := make([]string, 0, len(s.Attrs))
	for k := range s.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.SetAttr(k, s.Attrs[k])
	}
	if s.FromContext {
		el.ValueFromContext()
	}

	for i := range s.Children {
		c := &s.Children[i]
		switch {
		case c.Text != nil:
			t := el.AppendText(*c.Text)
			if c.ForView != nil {
				t.ForView = *c.ForView
			}
			if c.FormatOutput != nil {
				t.FormatOutput = *c.FormatOutput
			}
		case c.Unsafe != nil:
			t := el.AppendUnsafeText(*c.Unsafe)
			if c.FormatOutput != nil {
				t.FormatOutput = *c.FormatOutput
			}
		case c.CDATA != nil:
			tag.Add(el, tag.NewCDATA(el.Context(), *c.CDATA))
		default:
			c.fill(el.AddTag(c.Tag).Base())
		}
	}
}

func childPath(parent string, c *NodeSpec, i int) string {
	name := c.Tag
	if name == "" {
		name = "#text"
	}
	return parent + "/" + name + "[" + strconv.Itoa(i) + "]"
}

// Open loads the description called name from fsys, trying each of
// Extensions. A name that is not a valid fs path or has no file yields E024.
func Open(fsys fs.FS, name string, ctx tag.Context) (tag.Element, error) {
	if !fs.ValidPath(name) || strings.Contains(name, "/.") {
		return nil, errors.New("E024").WithDetail(name)
	}
	for _, ext := range Extensions {
		data, err := fs.ReadFile(fsys, name+ext)
		if err != nil {
			continue
		}
		e, err := LoadBytes(data, ctx)
		if err != nil {
			if me, ok := err.(*errors.MarkupError); ok && me.Detail != "" {
				me.Detail = name + ext + ": " + me.Detail
			}
			return nil, err
		}
		return e, nil
	}
	return nil, errors.New("E024").WithDetail(name)
}

// List returns the names of the descriptions in the root of fsys, without
// extension, sorted and deduplicated.
func List(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if !isExtension(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func isExtension(ext string) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ContentType returns the media type for a built tree.
func ContentType(e tag.Element) string {
	if e.Base().IsXML() {
		return "application/xml; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}
