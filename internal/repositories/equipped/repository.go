// Package equipped persists the mapping of hero -> slot -> equipped item.
//
// Each (hero, slot) pair is a two-state cell: empty or occupied by one item.
// The store exposes single-cell reads and writes plus a per-hero transaction
// that makes a read-check-write sequence over one hero's cells serializable
// against concurrent equips for the same hero. Different heroes are fully
// independent.
package equipped

//go:generate mockgen -destination=mock/mock_repository.go -package=equippedmock github.com/questkeep/hero-api/internal/repositories/equipped Store

import (
	"context"

	"github.com/questkeep/hero-api/internal/entities/gear"
)

// Store defines the interface for hero equipment persistence
type Store interface {
	// GetEquipped retrieves the entry for one equipment cell
	// Returns errors.InvalidArgument for empty hero IDs or unknown slots
	// Returns errors.NotFound if the slot is empty
	GetEquipped(ctx context.Context, input GetEquippedInput) (*GetEquippedOutput, error)

	// SetEquipped writes an entry for one cell, replacing any occupant
	SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error)

	// ClearEquipped empties one cell. Clearing an empty cell is a no-op
	// success.
	ClearEquipped(ctx context.Context, input ClearEquippedInput) (*ClearEquippedOutput, error)

	// GetLoadout retrieves all five cells for a hero
	GetLoadout(ctx context.Context, input GetLoadoutInput) (*GetLoadoutOutput, error)

	// WithHeroTransaction runs fn against a transactional view of one
	// hero's cells. Reads inside fn observe a stable pre-image; writes are
	// applied atomically when fn returns nil. If another writer touches the
	// hero's cells first, the sequence is retried a bounded number of
	// times, then fails with errors.Aborted. Any error from fn aborts the
	// transaction with no state change.
	WithHeroTransaction(ctx context.Context, heroID string, fn func(ctx context.Context, tx Store) error) error
}

// GetEquippedInput defines the input for reading one equipment cell
type GetEquippedInput struct {
	HeroID string
	Slot   gear.Slot
}

// GetEquippedOutput defines the output for reading one equipment cell
type GetEquippedOutput struct {
	Entry *gear.EquippedEntry
}

// SetEquippedInput defines the input for writing one equipment cell
type SetEquippedInput struct {
	HeroID string
	Slot   gear.Slot
	ItemID string
}

// SetEquippedOutput defines the output for writing one equipment cell
type SetEquippedOutput struct {
	Entry *gear.EquippedEntry
}

// ClearEquippedInput defines the input for clearing one equipment cell
type ClearEquippedInput struct {
	HeroID string
	Slot   gear.Slot
}

// ClearEquippedOutput defines the output for clearing one equipment cell
type ClearEquippedOutput struct {
	// Cleared is true when the cell held an item before the call
	Cleared bool
}

// GetLoadoutInput defines the input for reading all of a hero's cells
type GetLoadoutInput struct {
	HeroID string
}

// GetLoadoutOutput defines the output for reading all of a hero's cells
type GetLoadoutOutput struct {
	Loadout *gear.Loadout
}
