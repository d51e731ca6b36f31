package testutils

import (
	"github.com/KirkDiggler/rpg-arena/internal/engine/progress"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	runhistory "github.com/KirkDiggler/rpg-arena/internal/repositories/run_history"
)

const (
	// TestProfileID is the default profile id for fixtures
	TestProfileID = "player_test"
	// TestCharacterID is a non-starter character every fixture profile owns
	TestCharacterID = "tank"
)

// CreateTestProfile creates a profile that has played a few runs and
// selected a non-starter character
func CreateTestProfile(id string) *entities.Profile {
	p := entities.NewProfile(id)
	p.Unlock(TestCharacterID)
	p.SelectedCharacterID = TestCharacterID
	p.CurrencyBalance = 42
	p.BestWave = 6
	p.RunsPlayed = 3
	return p
}

// CreateTestRunRecord creates a history record for a run that reached wave
func CreateTestRunRecord(profileID, runID string, wave int) *runhistory.Record {
	return &runhistory.Record{
		RunID:       runID,
		ProfileID:   profileID,
		CharacterID: TestCharacterID,
		Summary: progress.Summary{
			Wave:    wave,
			Kills:   wave * 10,
			Essence: wave,
			Level:   1 + wave/2,
		},
	}
}
