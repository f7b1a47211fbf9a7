// SPDX-License-Identifier: MIT

// Package lvsimplex solves small linear programs with the tableau-based
// Two-Phase Simplex Method, over exact fractions or rounded decimals, and
// keeps every intermediate table so the whole run can be shown step by step.
//
// 🚀 What is lvsimplex?
//
//	A compact solver and CLI that brings together:
//		• Exact arithmetic: big-rational Fraction, significant-digit RoundedDecimal
//		• Tableau building: ≤, ≥ and = constraints, slack and helper columns
//		• Two-Phase Simplex: Phase 1 feasibility, Phase 2 optimization
//		• Special outcomes: infeasible, unbounded, multiple optimal solutions
//		• Reports: plain text tables or JSON, Prometheus counters, zap logs
//
// ✨ Why choose lvsimplex?
//
//   - Exact by default – no floating-point drift in the pivots
//   - Every step kept – each phase records its tables with the chosen pivot
//   - Generic engine – one algorithm over any number.Calculable kind
//
// Packages:
//
//	number/   Calculable contract, Fraction and RoundedDecimal
//	tableau/  Row, Table, problem builder, pivot rules, Phase 1 extension
//	simplex/  pivot transform, phase loops, special solutions, Solution
//	problem/  YAML/JSON/line-grammar input, validation, Solve dispatcher
//	report/   serializable run report, text and JSON writers
//	logger/   zap configuration and context fields
//	metrics/  Prometheus collectors for solves and pivots
//	cmd/lvsimplex cobra CLI
//
// Quick example:
//
//	max f(x) = 3•x1 + 2•x2
//	1•x1 + 1•x2 ≤ 4
//	1•x1 + 3•x2 ≤ 6
//	x1,x2 ≥ 0
//
//	lvsimplex solve --objective 3,2 --constraint 1,1<4 --constraint 1,3<6
//
// prints the INITIAL TABLE, one table per iteration, and the optimum f(x) = 12
// at x1 = 4, x2 = 0.
//
//	go install github.com/katalvlaran/lvsimplex/cmd/lvsimplex@latest
package lvsimplex
