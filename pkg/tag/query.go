package tag

import "strings"

// Condition keys with special meaning. Any other key matches an attribute.
const (
	KeyTagName = "tagName" // tag name, case-insensitive
	KeyTag     = "tag"     // tag name, exact
	KeyClass   = "class"   // class list membership
)

// Cond is one condition of a node query.
type Cond struct {
	Key   string
	Value string
}

// TagIs matches the tag name case-insensitively.
func TagIs(name string) Cond { return Cond{KeyTagName, name} }

// TagExact matches the tag name exactly.
func TagExact(name string) Cond { return Cond{KeyTag, name} }

// HasClass matches nodes whose class list contains class.
func HasClass(class string) Cond { return Cond{KeyClass, class} }

// AttrIs matches nodes whose attribute key equals value.
func AttrIs(key, value string) Cond { return Cond{key, value} }

// Match reports whether n satisfies every condition.
func (n *Node) Match(conds ...Cond) bool {
	for _, c := range conds {
		var ok bool
		switch c.Key {
		case KeyTagName:
			ok = strings.EqualFold(n.tagName, c.Value)
		case KeyTag:
			ok = n.tagName == c.Value
		case KeyClass:
			ok = n.ClassHas(c.Value)
		default:
			ok = n.attrs.Get(c.Key) == c.Value
		}
		if !ok {
			return false
		}
	}
	return true
}

// Filter returns every descendant matching conds in depth-first pre-order.
func (n *Node) Filter(conds ...Cond) []*Node {
	return n.FilterFunc(func(c *Node) bool { return c.Match(conds...) })
}

// FilterFunc returns every descendant accepted by fn in depth-first
// pre-order.
func (n *Node) FilterFunc(fn func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(c *Node) bool {
		if fn(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// First returns the first descendant matching conds, or nil.
func (n *Node) First(conds ...Cond) *Node {
	return n.FirstFunc(func(c *Node) bool { return c.Match(conds...) })
}

// FirstFunc returns the first descendant accepted by fn, or nil.
func (n *Node) FirstFunc(fn func(*Node) bool) *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if fn(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// walk visits the descendants of n in pre-order until visit returns false.
func (n *Node) walk(visit func(*Node) bool) bool {
	for _, c := range n.children {
		if !visit(c) || !c.walk(visit) {
			return false
		}
	}
	return true
}

// ParentMatch returns the nearest ancestor matching conds, or nil.
func (n *Node) ParentMatch(conds ...Cond) *Node {
	return n.ParentFunc(func(p *Node) bool { return p.Match(conds...) })
}

// ParentFunc returns the nearest ancestor accepted by fn, or nil.
func (n *Node) ParentFunc(fn func(*Node) bool) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if fn(p) {
			return p
		}
	}
	return nil
}
