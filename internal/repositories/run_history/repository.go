// Package runhistory provides the repository for finished run records
package runhistory

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/engine/progress"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=runhistorymock github.com/KirkDiggler/rpg-arena/internal/repositories/run_history Repository

// Record is one finished run as kept in a profile's history
type Record struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	ProfileID   string           `json:"profile_id" yaml:"profile_id"`
	CharacterID string           `json:"character_id" yaml:"character_id"`
	Summary     progress.Summary `json:"summary" yaml:"summary"`

	// Set by the repository on Append
	EndedAt time.Time `json:"ended_at" yaml:"ended_at"`
}

// AppendInput contains the record to add to its profile's history
type AppendInput struct {
	Record *Record
}

// AppendOutput contains the stored record with EndedAt set
type AppendOutput struct {
	Record *Record
}

// ListInput contains parameters for reading a profile's history
type ListInput struct {
	ProfileID string
	// Limit caps the number of records; zero returns everything kept
	Limit int
}

// ListOutput contains records newest first
type ListOutput struct {
	Records []*Record
}

// Repository defines the interface for run history storage
type Repository interface {
	// Append adds a record; the oldest records fall off past the cap
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a profile's records newest first; an unknown profile
	// has an empty history
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
