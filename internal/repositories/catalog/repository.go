// Package catalog provides read access to item definitions. Definitions are
// created once (seed/admin path) and immutable afterwards; the rules engine
// only ever reads them.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/questkeep/hero-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/questkeep/hero-api/internal/entities/gear"
)

// Repository defines the interface for item definition lookup and creation
type Repository interface {
	// Get retrieves an item definition by ID
	// Returns errors.InvalidArgument for empty item IDs
	// Returns errors.NotFound if no such item exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a new item definition
	// Returns errors.InvalidArgument for invalid definitions
	// Returns errors.AlreadyExists if the item ID is taken; item type sets
	// are immutable after creation, so there is no update path
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting an item definition
type GetInput struct {
	ItemID string
}

// GetOutput defines the output for getting an item definition
type GetOutput struct {
	Item *gear.ItemDefinition
}

// PutInput defines the input for storing an item definition
type PutInput struct {
	Item *gear.ItemDefinition
}

// PutOutput defines the output for storing an item definition
type PutOutput struct {
	Item *gear.ItemDefinition
}
