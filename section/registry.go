package section

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/steinlib"
)

// Registry maps section names to section definitions. Names are case
// sensitive.
type Registry struct {
	sections *treemap.Map // name → *Definition, sorted by name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sections: treemap.NewWithStringComparator()}
}

// DefaultRegistry creates a registry containing the standard sections.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range Standard() {
		r.sections.Put(def.Name, def)
	}
	return r
}

// Register adds a section definition. It is an error to register a name
// twice.
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Name == "" || def.Grammar == nil {
		return fmt.Errorf("incomplete section definition")
	}
	if _, exists := r.sections.Get(def.Name); exists {
		return fmt.Errorf("section %q already registered", def.Name)
	}
	if def.CallbackToken == "" {
		return fmt.Errorf("section %q has no callback token", def.Name)
	}
	tracer().Infof("registering section %s (%s)", def.Name, def.CallbackToken)
	r.sections.Put(def.Name, def)
	return nil
}

// Lookup finds the definition for a section name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.sections.Get(name)
	if !ok {
		return nil, false
	}
	return def.(*Definition), true
}

// Names returns the names of all registered sections, sorted.
func (r *Registry) Names() []string {
	keys := r.sections.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Size returns the number of registered sections.
func (r *Registry) Size() int {
	return r.sections.Size()
}

// NewParser creates a parser for the section with the given name. For
// unknown names it returns an error of kind steinlib.UnknownSection, which
// lists the known names.
func (r *Registry) NewParser(name string, line string) (*Parser, error) {
	def, ok := r.Lookup(name)
	if !ok {
		err := steinlib.NewError(steinlib.UnknownSection, line)
		err.Known = r.Names()
		return nil, err
	}
	return def.NewParser(), nil
}
