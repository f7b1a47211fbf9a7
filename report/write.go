// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report.WriteJSON: %w", err)
	}

	return nil
}

// WriteText writes the problem echo, every phase as aligned columns and the
// result summary.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	writeInput(bw, r.Input)
	for _, p := range r.Phases {
		fmt.Fprintf(bw, "\n%s\n", strings.ToUpper(p.Title))
		for _, t := range p.Tables {
			fmt.Fprintf(bw, "\n%s\n", t.Title)
			if err := writeTable(bw, t); err != nil {
				return fmt.Errorf("report.WriteText: %w", err)
			}
		}
	}
	fmt.Fprintln(bw)
	if r.Message != "" {
		fmt.Fprintln(bw, r.Message)
	}
	if r.Objective != "" {
		fmt.Fprintln(bw, "OPTIMAL SOLUTION")
		fmt.Fprintf(bw, "f(x) = %s\n", r.Objective)
		for _, v := range r.Variables {
			fmt.Fprintf(bw, "%s = %s\n", v.Name, v.Value)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report.WriteText: %w", err)
	}

	return nil
}

// writeInput renders
//
//	max f(x) = 3•x1 + 2•x2
//
//	1•x1 + 1•x2 ≤ 4
//	x1,x2 ≥ 0
func writeInput(w io.Writer, in Input) {
	sense := "max"
	if in.Minimize {
		sense = "min"
	}
	fmt.Fprintln(w, "INPUT")
	fmt.Fprintf(w, "%s f(x) = %s\n\n", sense, linear(in.Objective))
	for _, c := range in.Constraints {
		fmt.Fprintf(w, "%s %s %s\n", linear(c.Coefficients), relationSymbol(c.Relation), term(c.Bound))
	}
	names := make([]string, len(in.Objective))
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	fmt.Fprintf(w, "%s ≥ 0\n", strings.Join(names, ","))
}

// linear renders c1•x1 + c2•x2 + ...
func linear(coeffs []string) string {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = fmt.Sprintf("%s•x%d", term(c), i+1)
	}

	return strings.Join(parts, " + ")
}

// term parenthesizes negative and fractional literals.
func term(s string) string {
	if strings.ContainsAny(s, "/-") {
		return "(" + s + ")"
	}

	return s
}

func relationSymbol(rel string) string {
	switch rel {
	case ">=", ">", "≥":
		return "≥"
	case "=", "==":
		return "="
	default:
		return "≤"
	}
}

// writeTable aligns one snapshot; the pivot cell is marked with brackets.
func writeTable(w io.Writer, t TableView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.ColumnHeaders, "\t"))
	for i, cells := range t.Cells {
		row := make([]string, 0, len(cells)+2)
		row = append(row, t.RowHeaders[i])
		for j, c := range cells {
			if t.Pivot != nil && t.Pivot.Row == i && t.Pivot.Column == j {
				c = "[" + c + "]"
			}
			row = append(row, c)
		}
		row = append(row, t.RHS[i])
		fmt.Fprintf(tw, "%s\t\n", strings.Join(row, "\t"))
	}

	return tw.Flush()
}
