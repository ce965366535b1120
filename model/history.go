package model

// historySize is how many recent fingerprints are kept for cycle detection
const historySize = 5

// History remembers fingerprints of recent generations to spot still lifes
// and oscillators with a period of up to three generations.
type History struct {
	hashes []string
}

// Observe records g and reports whether it repeats one of the last three
// recorded generations.
func (h *History) Observe(g *Grid) bool {
	current := g.GetGridHash()

	stagnant := false
	for back := 1; back <= 3 && back <= len(h.hashes); back++ {
		if h.hashes[len(h.hashes)-back] == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	// Keep only the last few states
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}

	return stagnant
}

// Len returns how many fingerprints are held
func (h *History) Len() int {
	return len(h.hashes)
}
