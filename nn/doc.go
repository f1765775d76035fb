// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides model modules with named, optionally constrained
// parameters.
//
// # Modules
//
// A Module exposes its parameters as an ordered list of (name, tensor)
// pairs. Containers like ModuleDict prefix child names with the child's
// name and a dot, producing the dotted hierarchical names the optim
// package addresses parameters by:
//
//	model := nn.NewModuleDict().
//	    Add("likelihood", nn.NewGaussianLikelihood(nn.GaussianLikelihoodConfig{
//	        NoiseConstraint: nn.GreaterThan(1e-6),
//	    })).
//	    Add("mean_module", nn.NewConstantMean(nn.ConstantMeanConfig{}))
//
//	for _, p := range model.NamedParameters() {
//	    fmt.Println(p.Name, p.Value.Shape())
//	}
//
// # Constraints
//
// An Interval constraint restricts a parameter's value. By default it is
// enforced through a transform, leaving the raw parameter unconstrained;
// WithoutTransform switches to a hard raw-space bound that a module then
// declares through NamedBounds, and that box-constrained optimization must
// respect.
package nn
