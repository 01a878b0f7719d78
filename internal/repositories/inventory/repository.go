// Package inventory persists how many of each item a hero owns. Quantities
// only ever grow through this interface; equipping references inventory but
// never consumes it.
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/questkeep/hero-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/questkeep/hero-api/internal/entities/gear"
)

// Repository defines the interface for hero inventory persistence
type Repository interface {
	// Add increments the owned quantity of an item for a hero, creating
	// the entry at the given quantity if absent
	// Returns errors.InvalidArgument for empty IDs or non-positive quantities
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// List retrieves all inventory entries for a hero. A hero with no
	// items yields an empty list, not an error.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AddInput defines the input for granting items to a hero
type AddInput struct {
	HeroID   string
	ItemID   string
	Quantity int32
}

// AddOutput defines the output for granting items to a hero
type AddOutput struct {
	Entry *gear.InventoryEntry
}

// ListInput defines the input for listing a hero's inventory
type ListInput struct {
	HeroID string
}

// ListOutput defines the output for listing a hero's inventory
type ListOutput struct {
	Entries []gear.InventoryEntry
}
