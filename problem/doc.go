// SPDX-License-Identifier: MIT

// Package problem is the input side of the solver: a serializable LP
// description, its loaders (YAML and JSON files with ${ENV} substitution),
// the compact line grammar used on the command line ("3,2" for an objective,
// "1,3<6" for a constraint), validation, and Solve, which picks the number
// kind and runs the generic engine.
//
// Example problem file:
//
//	kind: rounded
//	mantissa: 6
//	minimize: false
//	objective: [3, 2]
//	constraints:
//	  - coefficients: [1, 1]
//	    relation: "<="
//	    bound: 4
//	  - line: "1,3<6"
package problem
