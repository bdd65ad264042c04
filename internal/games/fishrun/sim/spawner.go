package sim

// spawnEpsilon absorbs float accumulation so 0.3+0.3+0.4 reaches 1.0.
const spawnEpsilon = 1e-9

// SpawnTimer fires once every Delay seconds of accumulated frame time.
type SpawnTimer struct {
	Delay float64
	acc   float64
}

// Advance accumulates dt and reports whether the timer fired. Firing resets
// the accumulator to zero, so a long frame fires at most once.
func (t *SpawnTimer) Advance(dt float64) bool {
	t.acc += dt
	if t.acc+spawnEpsilon >= t.Delay {
		t.acc = 0
		return true
	}
	return false
}

// Elapsed returns the time accumulated since the last firing.
func (t *SpawnTimer) Elapsed() float64 {
	return t.acc
}

// Reset clears the accumulator.
func (t *SpawnTimer) Reset() {
	t.acc = 0
}
