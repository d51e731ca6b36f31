// Package entities provides the persisted data structures for rpg-arena.
package entities

import (
	"slices"
	"time"
)

// StarterCharacterID is the character every profile owns.
const StarterCharacterID = "starter"

// Settings are the player's presentation preferences.
type Settings struct {
	SoundEnabled   bool `json:"sound_enabled" yaml:"sound_enabled"`
	ReducedEffects bool `json:"reduced_effects" yaml:"reduced_effects"`
}

// Profile is the small blob the game keeps between runs.
type Profile struct {
	ID                    string    `json:"id" yaml:"id"`
	Settings              Settings  `json:"settings" yaml:"settings"`
	CurrencyBalance       int       `json:"currency_balance" yaml:"currency_balance"`
	UnlockedCharacterIDs  []string  `json:"unlocked_character_ids" yaml:"unlocked_character_ids"`
	CompletedChallengeIDs []string  `json:"completed_challenge_ids" yaml:"completed_challenge_ids"`
	SelectedCharacterID   string    `json:"selected_character_id" yaml:"selected_character_id"`
	BestWave              int       `json:"best_wave" yaml:"best_wave"`
	RunsPlayed            int       `json:"runs_played" yaml:"runs_played"`
	CreatedAt             time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewProfile returns a profile with the defaults a first launch gets.
func NewProfile(id string) *Profile {
	return &Profile{
		ID:                   id,
		Settings:             Settings{SoundEnabled: true},
		UnlockedCharacterIDs: []string{StarterCharacterID},
		SelectedCharacterID:  StarterCharacterID,
	}
}

// HasUnlocked reports whether the profile owns characterID.
func (p *Profile) HasUnlocked(characterID string) bool {
	return slices.Contains(p.UnlockedCharacterIDs, characterID)
}

// Unlock adds characterID to the owned list once.
func (p *Profile) Unlock(characterID string) {
	if !p.HasUnlocked(characterID) {
		p.UnlockedCharacterIDs = append(p.UnlockedCharacterIDs, characterID)
	}
}

// RecordRun credits a finished run's essence and best wave.
func (p *Profile) RecordRun(wave, essence int) {
	p.RunsPlayed++
	if essence > 0 {
		p.CurrencyBalance += essence
	}
	if wave > p.BestWave {
		p.BestWave = wave
	}
}
