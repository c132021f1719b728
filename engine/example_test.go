package engine_test

import (
	"fmt"

	"github.com/plus3/stackfall/engine"
)

// ExampleEngine drops a single O piece onto an empty board. Every spawn picks
// the O piece because the random source is fixed.
func ExampleEngine() {
	e, err := engine.New(engine.WithSize(6, 4), engine.WithRand(engine.KindSource(engine.KindO)))
	if err != nil {
		panic(err)
	}

	e.MoveLeft()
	e.HardDrop()

	s := e.Snapshot()
	for row := range s.Rows {
		for col := range s.Cols {
			c, layer := s.At(row, col)
			switch {
			case layer == engine.LayerActive:
				fmt.Print("@")
			case c.Occupied() && layer == engine.LayerBoard:
				fmt.Print("O")
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	// Output:
	// .@@.
	// .@@.
	// ....
	// ....
	// OO..
	// OO..
}

// ExampleEngine_Rotate shows that rotation is silently refused at a wall.
func ExampleEngine_Rotate() {
	e, err := engine.New(engine.WithRand(engine.KindSource(engine.KindI)))
	if err != nil {
		panic(err)
	}

	e.SoftDrop()
	fmt.Println(e.Rotate())
	for e.MoveRight() {
	}
	fmt.Println(e.Rotate())

	// Output:
	// true
	// false
}
