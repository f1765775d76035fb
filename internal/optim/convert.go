package optim

import (
	"github.com/cockroachdb/errors"

	"github.com/gofit-ml/gofit/internal/nn"
	"github.com/gofit-ml/gofit/internal/tensor"
)

// GetParametersAndBounds collects a module's named parameters and declared
// raw-space bounds, both in the module's iteration order.
//
// A nil filter keeps every name. The bounds map only contains parameters
// the module actually declares a bound for: a parameter without a
// declaration is absent, not present with an unconstrained default, and a
// module that does not implement nn.ConstrainedModule yields an empty map.
func GetParametersAndBounds(m nn.Module, filter NameFilter) (*ParamDict, map[string]Interval) {
	if filter == nil {
		filter = func(string) bool { return true }
	}

	params := NewParamDict()
	for _, p := range FilterParams(filter, m.NamedParameters()) {
		params.Set(p.Name, p.Value)
	}

	bounds := make(map[string]Interval)
	if constrained, ok := m.(nn.ConstrainedModule); ok {
		for _, b := range constrained.NamedBounds() {
			if filter(b.Name) {
				bounds[b.Name] = Interval{Lower: b.Lower, Upper: b.Upper}
			}
		}
	}

	return params, bounds
}

// ModuleToArray flattens a module's parameters into a single float64
// vector, together with the layout key needed to undo the flattening and
// the bound vectors an optimizer should respect.
//
// Names listed in exclude are omitted entirely. The overrides map is
// overlaid onto the module's declared bounds per name: a parameter with no
// declaration defaults to (-Inf, +Inf) before merging, and a nil override
// side keeps whatever the declared side was.
//
// Each parameter is flattened row-major; scalars contribute one element.
// Float32 parameters are widened to float64 in the vector.
//
// The returned ArrayBounds is nil when every effective bound is exactly
// (-Inf, +Inf), signalling that unconstrained optimization suffices.
func ModuleToArray(m nn.Module, exclude []string, overrides map[string]Bound) ([]float64, *ParamDict, *ArrayBounds, error) {
	excludeSet := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = struct{}{}
	}
	filter, err := CreateNameFilter(excludeSet)
	if err != nil {
		return nil, nil, nil, err
	}

	params, declared := GetParametersAndBounds(m, filter)

	x := make([]float64, 0, params.NumElements())
	for _, name := range params.Names() {
		raw, _ := params.Get(name)
		switch raw.DType() {
		case tensor.Float64:
			x = append(x, raw.AsFloat64()...)
		case tensor.Float32:
			for _, v := range raw.AsFloat32() {
				x = append(x, float64(v))
			}
		default:
			return nil, nil, nil, errors.Newf("parameter %q has non-float dtype %s", name, raw.DType())
		}
	}

	// Working bounds table: declared bounds, defaulted to (-Inf, +Inf) for
	// undeclared names, with caller overrides layered per side on top.
	effective := make(map[string]Interval, params.Len())
	anyBounded := false
	for _, name := range params.Names() {
		iv, ok := declared[name]
		if !ok {
			iv = Unbounded()
		}
		if override, ok := overrides[name]; ok {
			iv = override.applyTo(iv)
		}
		effective[name] = iv
		if !iv.IsUnbounded() {
			anyBounded = true
		}
	}

	if !anyBounded {
		return x, params, nil, nil
	}

	ab := &ArrayBounds{
		Lower: make([]float64, 0, len(x)),
		Upper: make([]float64, 0, len(x)),
	}
	for _, name := range params.Names() {
		raw, _ := params.Get(name)
		iv := effective[name]
		for i := 0; i < raw.NumElements(); i++ {
			ab.Lower = append(ab.Lower, iv.Lower)
			ab.Upper = append(ab.Upper, iv.Upper)
		}
	}

	return x, params, ab, nil
}

// SetParamsWithArray writes a flat vector back into a module's parameters.
//
// The layout dict (typically the one ModuleToArray returned) is walked in
// its iteration order with a running offset into x; each parameter
// receives exactly its element count, cast to its own dtype and copied
// into its existing buffer in place, so shape, dtype and device are
// preserved. The mutated module is returned.
//
// Errors are surfaced as soon as they are detected: a vector shorter than
// the layout fails mid-walk and leaves already-processed parameters
// mutated (no rollback), and trailing unconsumed elements fail after the
// walk.
func SetParamsWithArray(m nn.Module, x []float64, params *ParamDict) (nn.Module, error) {
	current := make(map[string]*tensor.RawTensor)
	for _, p := range m.NamedParameters() {
		current[p.Name] = p.Value
	}

	offset := 0
	for _, name := range params.Names() {
		layout, _ := params.Get(name)
		raw, ok := current[name]
		if !ok {
			return m, errors.Newf("module has no parameter %q", name)
		}
		if !raw.Shape().Equal(layout.Shape()) {
			return m, errors.Newf("parameter %q has shape %v, layout expects %v",
				name, raw.Shape(), layout.Shape())
		}

		n := raw.NumElements()
		if offset+n > len(x) {
			return m, errors.Newf("vector too short: parameter %q needs elements [%d:%d) of a length-%d vector",
				name, offset, offset+n, len(x))
		}

		chunk := x[offset : offset+n]
		switch raw.DType() {
		case tensor.Float64:
			copy(raw.AsFloat64(), chunk)
		case tensor.Float32:
			dst := raw.AsFloat32()
			for i, v := range chunk {
				dst[i] = float32(v)
			}
		default:
			return m, errors.Newf("parameter %q has non-float dtype %s", name, raw.DType())
		}
		offset += n
	}

	if offset != len(x) {
		return m, errors.Newf("vector length %d does not match layout size %d", len(x), offset)
	}

	return m, nil
}
