package optim

import (
	"github.com/gofit-ml/gofit/internal/tensor"
)

// ParamDict is an insertion-ordered mapping from parameter name to tensor.
//
// ModuleToArray returns a ParamDict as the authoritative layout key of the
// flat vector it produced: iterating the dict in order and taking each
// entry's element count reproduces the vector's layout exactly. The same
// dict is what SetParamsWithArray walks on write-back.
//
// The tensors are the module's own; the dict holds references, not copies.
type ParamDict struct {
	names  []string
	params map[string]*tensor.RawTensor
}

// NewParamDict creates an empty ParamDict.
func NewParamDict() *ParamDict {
	return &ParamDict{
		params: make(map[string]*tensor.RawTensor),
	}
}

// Set adds or replaces an entry. A new name is appended to the iteration
// order; an existing name keeps its position.
func (d *ParamDict) Set(name string, value *tensor.RawTensor) {
	if _, ok := d.params[name]; !ok {
		d.names = append(d.names, name)
	}
	d.params[name] = value
}

// Get returns the tensor stored under name.
func (d *ParamDict) Get(name string) (*tensor.RawTensor, bool) {
	value, ok := d.params[name]
	return value, ok
}

// Names returns the parameter names in insertion order.
// The returned slice is shared; callers must not modify it.
func (d *ParamDict) Names() []string {
	return d.names
}

// Len returns the number of entries.
func (d *ParamDict) Len() int {
	return len(d.names)
}

// NumElements returns the summed element count of all entries, which is
// the length of the flat vector laid out by this dict.
func (d *ParamDict) NumElements() int {
	n := 0
	for _, name := range d.names {
		n += d.params[name].NumElements()
	}
	return n
}
