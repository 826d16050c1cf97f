package tag

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html/atom"
)

// Constructor builds an element for a tag name.
type Constructor func(ctx Context, tagName string) Element

// Registry maps tag names to constructors. Names are matched
// case-insensitively.
type Registry struct {
	mu     sync.RWMutex
	ctors  map[string]Constructor
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ctors:  make(map[string]Constructor),
		logger: slog.Default(),
	}
}

// DefaultRegistry holds the typed HTML catalogue.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterAll(catalog())
	return r
}

// SetLogger sets the logger used to report fallback creations.
// A nil logger restores slog.Default().
func (r *Registry) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	r.mu.Lock()
	r.logger = l
	r.mu.Unlock()
}

// Register binds name to c, replacing any previous binding.
func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[strings.ToLower(name)] = c
}

// RegisterAll binds every entry of m.
func (r *Registry) RegisterAll(m map[string]Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, c := range m {
		r.ctors[strings.ToLower(name)] = c
	}
}

// Lookup returns the constructor bound to name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.ctors[strings.ToLower(name)]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Create builds an element for name. Registered names use their constructor.
// Anything else gets a generic node carrying name exactly as given.
func (r *Registry) Create(ctx Context, name string) Element {
	key := strings.ToLower(name)
	r.mu.RLock()
	c, ok := r.ctors[key]
	logger := r.logger
	r.mu.RUnlock()
	if ok {
		return c(ctx, key)
	}
	if atom.Lookup([]byte(key)) != 0 {
		logger.Debug("unregistered standard element, using generic node", "tag", name)
	} else {
		logger.Debug("unknown custom element, using generic node", "tag", name)
	}
	return NewNode(ctx, name)
}

// Register binds name in DefaultRegistry.
func Register(name string, c Constructor) { DefaultRegistry.Register(name, c) }

// RegisterAll binds every entry of m in DefaultRegistry.
func RegisterAll(m map[string]Constructor) { DefaultRegistry.RegisterAll(m) }

// Create builds an element for name through DefaultRegistry.
func Create(ctx Context, name string) Element { return DefaultRegistry.Create(ctx, name) }

// Generic is a Constructor returning an untyped node.
func Generic(ctx Context, tagName string) Element { return NewNode(ctx, tagName) }
