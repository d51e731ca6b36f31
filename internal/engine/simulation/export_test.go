package simulation

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/upgrades"
)

// Test hooks for driving intermissions without playing out a wave.

func (s *Simulation) SetCurrency(n int) { s.run.SetCurrency(n) }

func (s *Simulation) CompleteWave() { s.completeWave() }

func (s *Simulation) SetChoices(defs ...upgrades.Definition) { s.choices = defs }

func (s *Simulation) Regen(dt time.Duration) { s.regen(dt) }
