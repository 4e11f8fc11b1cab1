package main

import (
	"context"
	"fmt"
	"log"

	"github.com/julianpajo/sts/internal/sat"
	"github.com/julianpajo/sts/internal/schedule"
)

const Teams = 6

func main() {
	solver := sat.NewEmbeddedSolver()
	// solver := sat.NewProcessSolver("glucose")
	// solver := sat.NewProcessSolver("kissat")
	scheduler := schedule.NewScheduler(solver)

	grid, stats, err := scheduler.Build(context.Background(), Teams, schedule.Options{
		SymmetryBreaking: true,
		Optimize:         true,
	})
	if err != nil {
		log.Fatal(err)
	} else if grid == nil {
		fmt.Println("Not satisfiable")
		return
	}

	for p, row := range grid {
		for w, match := range row {
			fmt.Printf("Period: %v, Week: %v, Home: %v, Away: %v\n", p+1, w+1, match.Home, match.Away)
		}
	}
	fmt.Printf("Elapsed: %v, Optimal: %v\n", stats.Elapsed, stats.Optimal)
	for team, imbalance := range grid.Imbalances() {
		fmt.Printf("Team %v imbalance: %v\n", team, imbalance)
	}

	if !scheduler.Verify(grid, Teams) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}
