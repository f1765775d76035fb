// Package optim converts between named, shaped model parameters and the
// flat float64 vectors consumed by numerical optimizers.
//
// The conversion surface mirrors the shape expected by gradient-free and
// quasi-Newton optimizers: an initial point x0, an optional pair of bound
// vectors aligned with x0, and an ordered layout key for writing an
// optimizer's result back into the model.
package optim

import (
	"iter"
	"regexp"

	"github.com/cockroachdb/errors"

	"github.com/gofit-ml/gofit/internal/nn"
)

// ErrInvalidFilterSpec is returned by CreateNameFilter for an unsupported
// filter specification type.
var ErrInvalidFilterSpec = errors.New("invalid name filter specification")

// NameFilter decides which parameter names survive marshalling.
// It returns true for names to keep.
type NameFilter func(name string) bool

// CreateNameFilter builds an exclusion predicate from one of:
//
//   - map[string]struct{} or map[string]bool: keep a name iff it is not in
//     the set,
//   - *regexp.Regexp: keep a name iff the pattern does not match it,
//   - []string or iter.Seq[string]: consumed once into an exclusion set,
//     then treated as the set case.
//
// Any other specification type fails eagerly with ErrInvalidFilterSpec,
// before any filtering is attempted.
func CreateNameFilter(spec any) (NameFilter, error) {
	switch s := spec.(type) {
	case map[string]struct{}:
		return func(name string) bool {
			_, excluded := s[name]
			return !excluded
		}, nil
	case map[string]bool:
		return func(name string) bool {
			return !s[name]
		}, nil
	case *regexp.Regexp:
		return func(name string) bool {
			return !s.MatchString(name)
		}, nil
	case []string:
		set := make(map[string]struct{}, len(s))
		for _, name := range s {
			set[name] = struct{}{}
		}
		return CreateNameFilter(set)
	case iter.Seq[string]:
		set := make(map[string]struct{})
		for name := range s {
			set[name] = struct{}{}
		}
		return CreateNameFilter(set)
	default:
		return nil, errors.Wrapf(ErrInvalidFilterSpec, "got %T", spec)
	}
}

// FilterNames applies the filter to bare names, preserving relative order.
func FilterNames(filter NameFilter, names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if filter(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

// FilterParams applies the filter to (name, value) pairs, testing each
// pair's name and preserving relative order.
func FilterParams(filter NameFilter, params []nn.Parameter) []nn.Parameter {
	kept := make([]nn.Parameter, 0, len(params))
	for _, p := range params {
		if filter(p.Name) {
			kept = append(kept, p)
		}
	}
	return kept
}
