package nn

// ModuleDict is a container holding named child modules in insertion order.
//
// Child parameter and bound names are prefixed with the child's name and a
// dot, producing the dotted hierarchical names the marshalling layer
// addresses parameters by:
//
//	model := nn.NewModuleDict().
//	    Add("likelihood", likelihood).
//	    Add("model", gpModules)
//
//	// yields e.g. "likelihood.noise_covar.raw_noise"
type ModuleDict struct {
	names    []string
	children map[string]Module
}

// NewModuleDict creates an empty ModuleDict.
func NewModuleDict() *ModuleDict {
	return &ModuleDict{
		children: make(map[string]Module),
	}
}

// Add registers a child module under the given name and returns the dict
// for chaining. Adding an existing name replaces the child but keeps its
// original position.
func (d *ModuleDict) Add(name string, child Module) *ModuleDict {
	if _, ok := d.children[name]; !ok {
		d.names = append(d.names, name)
	}
	d.children[name] = child
	return d
}

// Get returns the child module registered under name.
func (d *ModuleDict) Get(name string) (Module, bool) {
	child, ok := d.children[name]
	return child, ok
}

// Len returns the number of child modules.
func (d *ModuleDict) Len() int {
	return len(d.names)
}

// NamedParameters returns all child parameters in insertion order, with
// each name prefixed by the owning child's name.
func (d *ModuleDict) NamedParameters() []Parameter {
	var params []Parameter
	for _, name := range d.names {
		for _, p := range d.children[name].NamedParameters() {
			params = append(params, Parameter{
				Name:  name + "." + p.Name,
				Value: p.Value,
			})
		}
	}
	return params
}

// NamedBounds returns declared bounds of all children implementing
// ConstrainedModule, prefixed like NamedParameters.
func (d *ModuleDict) NamedBounds() []NamedBound {
	var bounds []NamedBound
	for _, name := range d.names {
		constrained, ok := d.children[name].(ConstrainedModule)
		if !ok {
			continue
		}
		for _, b := range constrained.NamedBounds() {
			bounds = append(bounds, NamedBound{
				Name:  name + "." + b.Name,
				Lower: b.Lower,
				Upper: b.Upper,
			})
		}
	}
	return bounds
}
