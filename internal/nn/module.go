package nn

// Module is the capability interface required of any model whose
// parameters are marshalled to and from optimizer vectors.
//
// NamedParameters must yield (name, value) pairs in a stable order; the
// order defines the layout of the flat vector produced by
// optim.ModuleToArray. Containers prefix child parameter names with the
// child's name and a dot.
type Module interface {
	// NamedParameters returns all parameters of this module (including
	// nested modules) in discovery order.
	NamedParameters() []Parameter
}

// ConstrainedModule is implemented by modules that declare raw-space
// bounds for some of their parameters.
//
// The capability is optional: a Module that does not implement it simply
// declares no bounds, which is not an error. NamedBounds only reports
// parameters that carry a constraint; unconstrained parameters are absent
// from the result rather than reported with an infinite default.
type ConstrainedModule interface {
	Module

	// NamedBounds returns declared raw-space bounds in discovery order.
	NamedBounds() []NamedBound
}
