package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/julianpajo/sts/internal/sat"
	"github.com/julianpajo/sts/internal/schedule"
)

var (
	validSolvers = []string{"embedded", "glucose", "kissat", "cadical", "minisat"}
	solvers      = map[string]func() sat.Solver{
		"embedded": sat.NewEmbeddedSolver,
		"glucose":  func() sat.Solver { return sat.NewProcessSolver("glucose") },
		"kissat":   func() sat.Solver { return sat.NewProcessSolver("kissat") },
		"cadical":  func() sat.Solver { return sat.NewProcessSolver("cadical") },
		"minisat":  func() sat.Solver { return sat.NewProcessSolver("minisat") },
	}
)

func main() {
	// Define arguments
	teamsPtr := flag.Int("teams", 6, "Number of teams; must be even and at least 2")
	solverPtr := flag.String("solver", "embedded", "SAT solver to use. Allowed values are: \"embedded\", \"glucose\", \"kissat\", \"cadical\", \"minisat\", where \"embedded\" is the default and runs in-process; the others are external DIMACS solvers")
	sbPtr := flag.Bool("sb", false, "Add symmetry-breaking clauses")
	optPtr := flag.Bool("opt", false, "Minimize the maximum home/away imbalance")
	timeoutPtr := flag.Int("timeout", 300, "Time budget in seconds")
	outPtr := flag.String("out", "", "Path to the file where the JSON results will be written; if empty, only the table is printed")
	configPtr := flag.String("config", "", "Path to a JSON file mapping solver names to executable paths")
	flag.Parse()
	teams := *teamsPtr
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if teams < 2 || teams%2 != 0 {
		log.Fatalf("number of teams must be even and at least 2: %v", teams)
	} else if *timeoutPtr <= 0 {
		log.Fatalf("timeout must be positive: %v", *timeoutPtr)
	}
	if *configPtr != "" {
		sat.ConfigPath = *configPtr
	}

	// Initialize engines
	solver := solvers[solverStr]()
	scheduler := schedule.NewScheduler(solver)
	options := schedule.Options{
		SymmetryBreaking: *sbPtr,
		Optimize:         *optPtr,
		Timeout:          time.Duration(*timeoutPtr) * time.Second,
	}

	// Build schedule
	grid, stats, err := scheduler.Build(context.Background(), teams, options)
	if err != nil {
		log.Fatalf("an error occurred during schedule construction: %v", err)
	}

	if *outPtr != "" {
		writeResults(*outPtr, solverStr, options, grid, stats)
	}

	if grid == nil {
		fmt.Println("No solution found.")
		os.Exit(20)
	}

	// Verify schedule correctness
	if !scheduler.Verify(grid, teams) {
		log.Fatal("schedule verification failed")
	}

	printSchedule(grid, stats)
	os.Exit(10)
}

func printSchedule(grid schedule.Schedule, stats schedule.Stats) {
	weeks := len(grid[0])

	fmt.Println("\nSolution found:")
	var builder strings.Builder
	fmt.Fprintf(&builder, "%-15s", "Period \\ Week")
	for w := 1; w <= weeks; w++ {
		fmt.Fprintf(&builder, "%-10d", w)
	}
	fmt.Println(builder.String())

	for p, row := range grid {
		builder.Reset()
		fmt.Fprintf(&builder, "%-15d", p+1)
		for _, match := range row {
			fmt.Fprintf(&builder, "%-10s", fmt.Sprintf("[%d %d]", match.Home, match.Away))
		}
		fmt.Println(builder.String())
	}

	fmt.Printf("\nTime taken: %d seconds\n", int(stats.Elapsed.Seconds()))
	fmt.Printf("Optimal: %v\n", yesNo(stats.Optimal))
	if stats.Objective != nil {
		fmt.Printf("Objective value: %d\n", *stats.Objective)
	} else {
		fmt.Println("Objective value: N/A")
	}
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

type runResult struct {
	Time    int     `json:"time"`
	Optimal bool    `json:"optimal"`
	Obj     *int    `json:"obj"`
	Sol     [][]int `json:"sol,omitempty"`
}

// writeResults persists the run under a "<solver>_<sb>_<opt>" key, one
// flattened [period, week, home, away] row per match.
func writeResults(path, solverStr string, options schedule.Options, grid schedule.Schedule, stats schedule.Stats) {
	key := makeKey(solverStr, options.SymmetryBreaking, options.Optimize)

	elapsed := int(stats.Elapsed.Seconds())
	if limit := int(options.Timeout.Seconds()); elapsed > limit {
		elapsed = limit
	}
	result := runResult{
		Time:    elapsed,
		Optimal: stats.Optimal,
		Obj:     stats.Objective,
	}
	for p, row := range grid {
		for w, match := range row {
			result.Sol = append(result.Sol, []int{p + 1, w + 1, match.Home, match.Away})
		}
	}

	document, err := json.MarshalIndent(map[string]runResult{key: result}, "", "  ")
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}
	if err := os.WriteFile(path, document, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}

func makeKey(solverStr string, sb, opt bool) string {
	parts := []string{solverStr, "nosb", "noopt"}
	if sb {
		parts[1] = "sb"
	}
	if opt {
		parts[2] = "opt"
	}
	return strings.Join(parts, "_")
}
