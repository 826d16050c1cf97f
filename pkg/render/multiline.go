package render

import "github.com/vango-dev/markup/pkg/tag"

// MultiLine reports whether n renders its children on separate indented
// lines. Elements implementing tag.MultiLiner decide for themselves. For the
// rest, no children means single-line, one child inherits from that child,
// and two or more children are always multi-line.
func MultiLine(n *tag.Node) bool {
	if n == nil {
		return false
	}
	if m, ok := n.Outer().(tag.MultiLiner); ok {
		return m.MultiLine()
	}
	switch children := n.Children(); len(children) {
	case 0:
		return false
	case 1:
		return MultiLine(children[0])
	default:
		return true
	}
}
