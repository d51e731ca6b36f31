// Package profile provides the repository for persisted player profiles
package profile

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/rpg-arena/internal/repositories/profile Repository

// GetInput contains parameters for loading a profile
type GetInput struct {
	ID string
}

// GetOutput contains the loaded profile
type GetOutput struct {
	Profile *entities.Profile
}

// SaveInput contains the profile to store; it is created when absent
type SaveInput struct {
	Profile *entities.Profile
}

// SaveOutput contains the stored profile with its timestamps set
type SaveOutput struct {
	Profile *entities.Profile
}

// DeleteInput contains parameters for removing a profile
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; reserved for future fields
type DeleteOutput struct{}

// ListInput is empty; reserved for paging
type ListInput struct{}

// ListOutput contains every stored profile id in sorted order
type ListOutput struct {
	IDs []string
}

// VerifyInput controls a consistency scan of stored profiles
type VerifyInput struct {
	// Fix deletes unreadable profiles and drops dangling index entries
	Fix bool
}

// VerifyOutput reports what the scan found
type VerifyOutput struct {
	Checked int
	// Corrupt lists ids whose stored data does not decode
	Corrupt []string
	// Dangling lists indexed ids with no stored profile
	Dangling []string
	// Fixed is true when the problems above were removed
	Fixed bool
}

// Repository defines the interface for profile storage operations
type Repository interface {
	// Get returns NotFound when no profile is stored under the id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a profile
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete returns NotFound when no profile is stored under the id
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the ids of every stored profile
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Verify scans every stored profile and optionally repairs the store
	Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, error)
}
