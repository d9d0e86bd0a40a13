package fifteen_test

import (
	"fmt"

	"github.com/katalvlaran/fifteen"
)

// ExampleSolver_Solve_alreadySolved demonstrates that a solved board returns
// an empty move list.
func ExampleSolver_Solve_alreadySolved() {
	s := fifteen.NewSolver(fifteen.Options{})

	moves, _, err := s.Solve(fifteen.Goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(moves))

	// Output:
	// 0
}

// ExampleSolver_Solve_oneMove demonstrates solving a board one slide away
// from the goal.
func ExampleSolver_Solve_oneMove() {
	s := fifteen.NewSolver(fifteen.Options{})

	start := fifteen.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}
	moves, _, err := s.Solve(start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(moves))

	// Output:
	// 1
}

// ExampleSolver_Solve_unsolvable demonstrates the rejection of a board that
// fails the parity-based solvability test, without starting a search.
func ExampleSolver_Solve_unsolvable() {
	s := fifteen.NewSolver(fifteen.Options{})

	start := fifteen.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}
	_, _, err := s.Solve(start)
	fmt.Println(err)

	// Output:
	// solvability: configuration is not solvable
}
