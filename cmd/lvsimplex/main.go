// SPDX-License-Identifier: MIT

// Command lvsimplex solves linear programs with the Two-Phase Simplex Method
// and prints every tableau.
//
//	lvsimplex solve --file lp.yaml
//	lvsimplex solve --objective 3,2 --constraint 1,1<4 --constraint 1,3<6 --round 6
//	lvsimplex version
//
// Every solve flag can also be set through the environment with the
// LVSIMPLEX_ prefix, e.g. LVSIMPLEX_ROUND=6 or LVSIMPLEX_LOG_LEVEL=debug.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
