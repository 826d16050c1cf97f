package tag

import "strings"

// Classes returns the class list. The slice must not be modified.
func (n *Node) Classes() []string { return n.classes }

// ClassAppend appends classes. Each argument may hold several
// whitespace-separated names; empty names are dropped.
func (n *Node) ClassAppend(classes ...string) {
	for _, s := range classes {
		n.classes = append(n.classes, strings.Fields(s)...)
	}
}

// ClassPush moves class to the front of the list, adding it if missing.
func (n *Node) ClassPush(class string) {
	n.ClassRemove(class)
	n.classes = append([]string{class}, n.classes...)
}

// ClassRemove removes the first occurrence of class.
func (n *Node) ClassRemove(class string) {
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// ClassHas reports whether class is in the list.
func (n *Node) ClassHas(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}
