package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

B3/S23: a cell with exactly 3 live neighbors is born or survives, a live cell
with exactly 2 live neighbors survives, every other cell is dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
