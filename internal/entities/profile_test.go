package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

func TestNewProfileDefaults(t *testing.T) {
	p := entities.NewProfile("player_1")

	assert.Equal(t, "player_1", p.ID)
	assert.True(t, p.Settings.SoundEnabled)
	assert.False(t, p.Settings.ReducedEffects)
	assert.Equal(t, []string{entities.StarterCharacterID}, p.UnlockedCharacterIDs)
	assert.Equal(t, entities.StarterCharacterID, p.SelectedCharacterID)
}

func TestUnlockIsIdempotent(t *testing.T) {
	p := entities.NewProfile("player_1")
	p.Unlock("tank")
	p.Unlock("tank")

	assert.True(t, p.HasUnlocked("tank"))
	assert.Len(t, p.UnlockedCharacterIDs, 2)
}

func TestRecordRun(t *testing.T) {
	p := entities.NewProfile("player_1")
	p.RecordRun(6, 14)
	p.RecordRun(3, 5)

	assert.Equal(t, 2, p.RunsPlayed)
	assert.Equal(t, 19, p.CurrencyBalance)
	assert.Equal(t, 6, p.BestWave)
}
