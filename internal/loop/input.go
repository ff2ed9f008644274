package loop

import "github.com/vovakirdan/tui-pachinko/internal/core"

// Input forwards an action to the simulation. Only ActionFire has an effect
// here: it launches one ball. Platform actions (pause, restart, quit) are
// handled by the caller.
func (l *Loop) Input(a core.Action) {
	if a != core.ActionFire || l.sim == nil || l.stopped {
		return
	}
	//nolint:errcheck // Fault is logged by guard
	l.guard("add ball", l.sim.AddBall)
}
