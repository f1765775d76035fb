// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim converts between named, shaped model parameters and the
// flat float64 vectors consumed by numerical optimizers.
//
// # Flatten and write back
//
// ModuleToArray flattens a module's parameters into one vector, returning
// the vector, an ordered layout key, and bound vectors (nil when every
// bound is unconstrained):
//
//	x, layout, bounds, err := optim.ModuleToArray(model, nil, nil)
//
//	// ... hand (x, bounds) to an optimizer ...
//
//	_, err = optim.SetParamsWithArray(model, result, layout)
//
// Write-back is exact: each parameter keeps its shape, dtype and device,
// and re-flattening reproduces the written vector bit for bit.
//
// # Excluding parameters and overriding bounds
//
//	x, layout, bounds, err := optim.ModuleToArray(model,
//	    []string{"model.mean_module.raw_constant"},
//	    map[string]optim.Bound{
//	        "model.covar_module.raw_lengthscale": {Lower: optim.F(0.1)},
//	    })
//
// # Fitting
//
// Fit wires the conversion to gonum's optimizers end to end: it flattens,
// minimizes a loss closure, and writes the best parameters back into the
// model.
package optim
