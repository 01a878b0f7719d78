package equipment

import (
	"github.com/questkeep/hero-api/internal/entities/gear"
)

// EquipInput defines the input for equipping an item
type EquipInput struct {
	HeroID string
	ItemID string
	Slot   gear.Slot
}

// EquipOutput defines the output for equipping an item
type EquipOutput struct {
	// Entry is the cell written by this equip
	Entry *gear.EquippedEntry
	// ClearedSlot is set when the two-handed rule emptied the sibling
	// hand slot as part of the same transaction
	ClearedSlot *gear.Slot
	// Loadout is the hero's full equipped-state snapshot as of the commit
	Loadout *gear.Loadout
}

// UnequipInput defines the input for unequipping a slot
type UnequipInput struct {
	HeroID string
	Slot   gear.Slot
}

// UnequipOutput defines the output for unequipping a slot
type UnequipOutput struct {
	// Cleared is true when the slot held an item before the call
	Cleared bool
}

// GetLoadoutInput defines the input for reading a hero's equipped state
type GetLoadoutInput struct {
	HeroID string
}

// GetLoadoutOutput defines the output for reading a hero's equipped state
type GetLoadoutOutput struct {
	Loadout *gear.Loadout
}

// GrantItemInput defines the input for granting items to a hero's inventory
type GrantItemInput struct {
	HeroID   string
	ItemID   string
	Quantity int32
}

// GrantItemOutput defines the output for granting items
type GrantItemOutput struct {
	Entry *gear.InventoryEntry
}

// ListInventoryInput defines the input for listing a hero's inventory
type ListInventoryInput struct {
	HeroID string
}

// ListInventoryOutput defines the output for listing a hero's inventory
type ListInventoryOutput struct {
	Entries []gear.InventoryEntry
}
