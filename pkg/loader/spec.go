package loader

// NodeSpec describes one node of a document. Exactly one of Tag, Text,
// Unsafe and CDATA must be set.
type NodeSpec struct {
	Tag    string  `mapstructure:"tag"`
	Text   *string `mapstructure:"text"`
	Unsafe *string `mapstructure:"unsafe"`
	CDATA  *string `mapstructure:"cdata"`

	ID    string            `mapstructure:"id"`
	Name  string            `mapstructure:"name"`
	Class []string          `mapstructure:"class"`
	Attrs map[string]string `mapstructure:"attrs"`

	// FromContext fills the value attribute from the request parameter
	// matching Name.
	FromContext bool `mapstructure:"fromContext"`

	// FormatOutput and ForView override the text defaults.
	FormatOutput *bool `mapstructure:"formatOutput"`
	ForView      *bool `mapstructure:"forView"`

	Children []NodeSpec `mapstructure:"children"`
}

// Description is a complete document: a root node plus document options.
type Description struct {
	// XML renders the tree as an XML document.
	XML bool `mapstructure:"xml"`

	// Lang sets the lang attribute of an <html> root.
	Lang string `mapstructure:"lang"`

	// Title sets the <title> of an <html> root.
	Title string `mapstructure:"title"`

	NodeSpec `mapstructure:",squash"`
}

// kinds counts how many of the mutually exclusive node fields are set.
func (s *NodeSpec) kinds() int {
	n := 0
	if s.Tag != "" {
		n++
	}
	for _, p := range []*string{s.Text, s.Unsafe, s.CDATA} {
		if p != nil {
			n++
		}
	}
	return n
}
