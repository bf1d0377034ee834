// Command numbers is a minimal driver for the numbers package: it solves a
// single (target, tiles) board and prints the resulting operation chain.
//
// It deliberately does not implement the multi-threaded benchmark harness
// described in spec.md §5 (a producer/consumer handoff enumerating every
// possible board) — that harness is plumbing external to the solver core,
// out of scope for this module. This command exercises exactly one Solver
// from exactly one goroutine, which is the only usage pattern the solver
// itself guarantees is safe.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nrx/numbers"
	"github.com/nrx/numbers/validate"
)

func main() {
	var (
		target        uint64
		tilesFlag     string
		operationCap  uint64
		resultIdxCap  uint64
		maxComplexity uint64
	)
	flag.Uint64Var(&target, "target", 0, "target number to reach (required)")
	flag.StringVar(&tilesFlag, "tiles", "", "comma-separated tile values, e.g. 100,75,50,25,6,3 (required)")
	flag.Uint64Var(&operationCap, "operation-capacity", 25000, "arena capacity (operations)")
	flag.Uint64Var(&resultIdxCap, "result-index-capacity", 15000, "result-dedup index capacity")
	flag.Uint64Var(&maxComplexity, "max-complexity", math.MaxUint16, "maximum solution complexity")
	flag.Parse()

	tiles, err := parseTiles(tilesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "numbers:", err)
		os.Exit(2)
	}
	if target == 0 || len(tiles) == 0 {
		fmt.Fprintln(os.Stderr, "numbers: -target and -tiles are required")
		os.Exit(2)
	}

	solver, err := numbers.New(uint16(operationCap), uint16(resultIdxCap))
	if err != nil {
		fmt.Fprintln(os.Stderr, "numbers:", err)
		os.Exit(1)
	}

	sol, err := solver.Solve(uint32(target), tiles, uint16(maxComplexity))
	if err != nil && err != numbers.ErrAborted {
		fmt.Fprintln(os.Stderr, "numbers:", err)
		os.Exit(1)
	}
	if err == numbers.ErrAborted {
		fmt.Fprintln(os.Stderr, "numbers: search aborted (arena exhausted); showing best result found")
	}

	fmt.Printf("value=%d complexity=%d\n", sol.Value, sol.Complexity)

	if _, verr := validate.Validate(uint32(target), tiles, sol.Ops, func(op validate.Operation) {
		fmt.Printf("  %d %c %d = %d\n", op.Left, op.OpChar, op.Right, op.Result)
	}); verr != nil {
		fmt.Fprintln(os.Stderr, "numbers: solution failed to validate:", verr)
		os.Exit(1)
	}
}

func parseTiles(s string) ([]uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tiles := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid tile %q: %w", p, err)
		}
		tiles = append(tiles, uint32(v))
	}

	return tiles, nil
}
