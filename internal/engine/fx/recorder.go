package fx

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/geom"
)

// Recorder is a Presenter that counts what it was asked to show. It is used
// by the headless runner and in tests.
type Recorder struct {
	mu sync.Mutex

	DamageNumbers int
	Crits         int
	Sounds        map[Cue]int
	Shakes        int
	Notices       []Notice
}

var _ Presenter = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Sounds: make(map[Cue]int)}
}

// DamageNumber implements Presenter
func (r *Recorder) DamageNumber(_ geom.Vec, _ float64, crit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.DamageNumbers++
	if crit {
		r.Crits++
	}
}

// Sound implements Presenter
func (r *Recorder) Sound(cue Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sounds[cue]++
}

// Shake implements Presenter
func (r *Recorder) Shake(time.Duration, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Shakes++
}

// Notify implements Presenter
func (r *Recorder) Notify(notice Notice, _ map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, notice)
}

// Count returns how many times notice was recorded.
func (r *Recorder) Count(notice Notice) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.Notices {
		if got == notice {
			n++
		}
	}
	return n
}

// SoundCount returns how many times cue was recorded.
func (r *Recorder) SoundCount(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Sounds[cue]
}
