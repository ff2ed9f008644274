package game

// Simulation owns authoritative game state. The frame loop only talks to it
// through these three calls.
type Simulation interface {
	// Init builds the starting state and returns its snapshot.
	Init() State

	// Step advances the simulation. deltaMs is the time since the previous
	// frame, nowMs the host clock; the returned snapshot must not share
	// mutable slices with the simulation's internal state.
	Step(deltaMs, nowMs float64) State

	// AddBall launches a new ball. Fire-and-forget: the ball shows up in the
	// next Step.
	AddBall()
}
