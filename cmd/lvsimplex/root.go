// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsimplex/logger"
	"github.com/katalvlaran/lvsimplex/metrics"
	"github.com/katalvlaran/lvsimplex/problem"
	"github.com/katalvlaran/lvsimplex/report"
	"github.com/katalvlaran/lvsimplex/simplex"
)

var version = "0.1.0"

// envPrefix scopes environment overrides, e.g. LVSIMPLEX_ROUND.
const envPrefix = "LVSIMPLEX"

// Flag names, shared by cobra and viper.
const (
	flagFile          = "file"
	flagObjective     = "objective"
	flagConstraint    = "constraint"
	flagRound         = "round"
	flagMin           = "min"
	flagFormat        = "format"
	flagLogLevel      = "log-level"
	flagLogEncoding   = "log-encoding"
	flagMetrics       = "metrics"
	flagMaxIterations = "max-iterations"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var errNoProblem = errors.New("either --file or --objective with --constraint is required")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvsimplex",
		Short: "lvsimplex - Two-Phase Simplex solver with exact arithmetic",
		Long: `lvsimplex solves linear programs (maximize or minimize a linear objective
subject to <=, >= and = constraints over non-negative variables) with the
tableau-based Two-Phase Simplex Method and prints every intermediate table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lvsimplex v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})
	root.AddCommand(newSolveCmd())

	return root
}

func newSolveCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a linear program",
		Long: `Solve a linear program given as a YAML/JSON file or inline.

Inline constraints use the grammar "a1,...,an<b", "a1,...,an>b",
"a1,...,an=b" or "a1,...,an,b" (<=). Numbers may be integers, decimals
or fractions such as -3/4.

Example:
  lvsimplex solve --objective 3,2 --constraint 1,1<4 --constraint 1,3<6
  lvsimplex solve --file lp.yaml --round 6 --format json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()

			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, v)
		},
	}

	f := cmd.Flags()
	f.StringP(flagFile, "f", "", "Path to a YAML or JSON problem file")
	f.StringP(flagObjective, "o", "", `Objective coefficients, e.g. "3,2"`)
	f.StringArrayP(flagConstraint, "c", nil, `Constraint line, repeatable, e.g. "1,3<6"`)
	f.StringP(flagRound, "r", "", `Number kind: "false" for exact fractions, or N significant digits`)
	f.BoolP(flagMin, "m", false, "Minimize the objective instead of maximizing it")
	f.String(flagFormat, formatText, "Output format (text, json)")
	f.String(flagLogLevel, "warn", "Log level (debug, info, warn, error)")
	f.String(flagLogEncoding, "console", "Log encoding (console, json)")
	f.Bool(flagMetrics, false, "Print Prometheus metrics to stderr after solving")
	f.Int(flagMaxIterations, simplex.DefaultMaxIterations, "Pivot limit per phase")

	return cmd
}

func runSolve(cmd *cobra.Command, v *viper.Viper) error {
	format := v.GetString(flagFormat)
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q", format)
	}

	log, err := logger.New(logger.Config{
		Level:       v.GetString(flagLogLevel),
		Encoding:    v.GetString(flagLogEncoding),
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	constraints, err := cmd.Flags().GetStringArray(flagConstraint)
	if err != nil {
		return err
	}
	p, source, err := loadProblem(v, constraints)
	if err != nil {
		return err
	}

	opts := []problem.Option{problem.WithLogger(log)}
	if n := v.GetInt(flagMaxIterations); n > 0 {
		opts = append(opts, problem.WithMaxIterations(n))
	}
	var reg *prometheus.Registry
	if v.GetBool(flagMetrics) {
		reg = prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)
		opts = append(opts, problem.WithRecorders(func(kind string) simplex.Recorder {
			return collector.For(kind)
		}))
	}

	ctx := context.WithValue(cmd.Context(), logger.ProblemKey, source)
	r, err := problem.Solve(ctx, p, opts...)
	if err != nil {
		return err
	}
	log.Info("solve complete", zap.String("outcome", r.Outcome), zap.String("objective", r.Objective))

	if err := write(cmd.OutOrStdout(), format, r); err != nil {
		return err
	}
	if reg != nil {
		return metrics.WriteText(cmd.ErrOrStderr(), reg)
	}

	return nil
}

// loadProblem builds the problem from --file or the inline flags and applies
// the --round and --min overrides. Constraint lines come from the command
// line only. It returns a short source label for logs.
func loadProblem(v *viper.Viper, constraints []string) (*problem.Problem, string, error) {
	var (
		p      *problem.Problem
		source string
		err    error
	)
	switch path := v.GetString(flagFile); {
	case path != "":
		if p, err = problem.Load(path); err != nil {
			return nil, "", err
		}
		source = path
	case v.GetString(flagObjective) != "":
		if p, err = inlineProblem(v.GetString(flagObjective), constraints); err != nil {
			return nil, "", err
		}
		source = "inline"
	default:
		return nil, "", errNoProblem
	}

	if mode := v.GetString(flagRound); mode != "" {
		if err := p.SetRoundMode(mode); err != nil {
			return nil, "", err
		}
	}
	if v.GetBool(flagMin) {
		p.Minimize = true
	}

	return p, source, p.Validate()
}

func inlineProblem(objective string, constraints []string) (*problem.Problem, error) {
	obj, err := problem.ParseObjectiveLine(objective, 0)
	if err != nil {
		return nil, err
	}
	p := &problem.Problem{Objective: obj}
	for _, line := range constraints {
		c, err := problem.ParseConstraintLine(line, len(obj))
		if err != nil {
			return nil, err
		}
		p.Constraints = append(p.Constraints, c)
	}

	return p, nil
}

func write(w io.Writer, format string, r *report.Report) error {
	if format == formatJSON {
		return report.WriteJSON(w, r)
	}

	return report.WriteText(w, r)
}
