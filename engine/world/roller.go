package world

// Roller is the randomness source for critical-hit rolls.
type Roller interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// critRoll draws a uniform integer in [0, 99].
func critRoll(r Roller) uint {
	return uint(r.Intn(100))
}
