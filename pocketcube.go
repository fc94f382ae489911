// Package pocketcube models a 2x2x2 cube and solves it with a bidirectional
// breadth-first search.
//
// # Features
//
//   - Corner-only cube model with table-driven face turns
//   - Equality up to whole-cube re-orientation (24 symmetries)
//   - Meet-in-the-middle solver with self-verification
//   - Compact notation (R, R', R2) from raw quarter turns
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube := pocketcube.NewCube()
//	cube.Apply(pocketcube.R, pocketcube.U, pocketcube.LPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := pocketcube.Solve(context.Background(), cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", result.Canonical())
//
// # Solver Options
//
// The solver is configured with functional options:
//
//	solver := pocketcube.NewSolver(
//	    pocketcube.WithLogger(logger),
//	    pocketcube.WithMaxDepth(7),
//	    pocketcube.WithProgress(func(p pocketcube.Progress) {
//	        fmt.Println("level", p.Level, "visited", p.VisitedScrambled+p.VisitedSolved)
//	    }),
//	)
//
// # Notation
//
// Input notation is a face letter with an optional apostrophe. Half turns
// are written as two quarter turns ("U U"); Canonicalize renders them as
// "U2" on output only.
package pocketcube
