// SPDX-License-Identifier: MIT

// Package report renders a solve as plain data: every phase with its table
// snapshots, the result classification and the optimal solution.
//
// A Report holds strings only, so one type serves every number kind. It is
// written either as JSON (WriteJSON) or as aligned plain text (WriteText);
// there is no terminal styling.
package report
