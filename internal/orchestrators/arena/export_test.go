package arena

import "github.com/KirkDiggler/rpg-arena/internal/engine/simulation"

// SimulationOf reaches into a live run so tests can stage world state.
func SimulationOf(svc Service, runID string) *simulation.Simulation {
	o := svc.(*orchestrator)
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.runs[runID].sim
}
