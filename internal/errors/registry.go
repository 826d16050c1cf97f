package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Tree and property errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryProperty,
		Message:  "Unsupported property type",
		Detail:   "Typed attribute properties support string, bool and int values only.",
	},
	"E002": {
		Category: CategoryTree,
		Message:  "Node would become its own ancestor",
		Detail:   "A node cannot be added to itself or to one of its descendants.",
	},
	"E003": {
		Category: CategoryTree,
		Message:  "Node is already attached to a parent",
		Detail:   "Remove the node from its current parent before adding it elsewhere.",
	},
	"E004": {
		Category: CategoryTree,
		Message:  "Nil node",
		Detail:   "A nil element cannot be added to the tree.",
	},
	"E005": {
		Category: CategoryTree,
		Message:  "Leaf node cannot have children",
		Detail:   "Text and CDATA nodes hold content only.",
	},

	// ============================================
	// Document description errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryDocument,
		Message:  "Invalid document description",
		Detail:   "The description could not be decoded as YAML or JSON.",
	},
	"E021": {
		Category: CategoryDocument,
		Message:  "Ambiguous node",
		Detail:   "A node may set only one of tag, text, unsafe or cdata.",
	},
	"E022": {
		Category: CategoryDocument,
		Message:  "Empty node",
		Detail:   "A node must set one of tag, text, unsafe or cdata.",
	},
	"E023": {
		Category: CategoryDocument,
		Message:  "CDATA outside XML document",
		Detail:   "CDATA sections are only valid in documents with xml: true.",
	},
	"E024": {
		Category: CategoryDocument,
		Message:  "Document not found",
		Detail:   "No description file exists for the requested name.",
	},

	// ============================================
	// Configuration errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file contains an invalid value.",
	},
	"E031": {
		Category: CategoryConfig,
		Message:  "Configuration file unreadable",
		Detail:   "The configuration file could not be read or parsed.",
	},

	// ============================================
	// Publish errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The rendered document could not be uploaded.",
	},
	"E041": {
		Category: CategoryPublish,
		Message:  "Missing bucket",
		Detail:   "A destination bucket is required to publish documents.",
	},
	"E042": {
		Category: CategoryPublish,
		Message:  "AWS configuration failed",
		Detail:   "Region or credentials could not be loaded from the environment or shared config files.",
	},

	// ============================================
	// CLI errors (E050-E059)
	// ============================================

	"E050": {
		Category: CategoryCLI,
		Message:  "Invalid parameter",
		Detail:   "Parameters must be given as key=value.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
