// SPDX-License-Identifier: MIT

// Package tableau holds the simplex tableau data model and the operations
// that build, inspect and reshape it.
//
// The package provides:
//
//   - Row and Table: immutable snapshots over any number.Calculable kind.
//     Every operation returns a new value; a Table that has been handed out
//     is never mutated again, so a solve history stays a faithful audit trail.
//   - Build: turns an objective and a constraint list into the initial table
//     (reduced-cost convention, slack identity, header tagging, first pivot).
//   - The calc engine: NegativeRows, SelectPivot (ratio test), IsValid,
//     IsOptimal, IsDegenerate and UpdateRowHeaders.
//   - The extension service: BuildExtension / RemoveExtension add and drop the
//     Phase-1 auxiliary row z' and the helper (artificial) columns.
//
// Layout conventions:
//
//	row 0            reduced costs of the active objective (z, or z' when extended)
//	row 1            original objective z while the table is extended
//	columns          x1..xn, s1..sm, then h1..hk while extended
//	column headers   the columns above followed by the trailing "f" marker (RHS)
//	row headers      z' / z, then one tagged basic variable per constraint row
//
// Row headers of constraint rows carry a bracketed 1-based column position,
// e.g. "x2[2]" or "s1[3]", so the basic variable of each row can be looked up
// without scanning the matrix.
package tableau
