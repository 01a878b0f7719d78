// Package gear defines the equipment domain model: the five fixed equipment
// slots, item type tags, item definitions, and the persisted equipped and
// inventory entries.
package gear

import (
	"github.com/questkeep/hero-api/internal/errors"
)

// Slot represents one of the five fixed equipment positions on a hero
type Slot string

// The closed set of equipment slots. One equipped item per hero per slot.
const (
	SlotHelm   Slot = "helm"
	SlotWeapon Slot = "weapon"
	SlotShield Slot = "shield"
	SlotArmor  Slot = "armor"
	SlotGloves Slot = "gloves"
)

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is one of the five known slots
func (s Slot) IsValid() bool {
	switch s {
	case SlotHelm, SlotWeapon, SlotShield, SlotArmor, SlotGloves:
		return true
	default:
		return false
	}
}

// AllSlots returns a slice of all valid equipment slots
func AllSlots() []Slot {
	return []Slot{
		SlotHelm,
		SlotWeapon,
		SlotShield,
		SlotArmor,
		SlotGloves,
	}
}

// SlotFromString converts a string to a Slot.
// Returns the slot and true if valid, empty slot and false if invalid.
func SlotFromString(s string) (Slot, bool) {
	slot := Slot(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// ItemType is a tag on an item describing which slot(s) it can fill
type ItemType string

// Item type tags. The first five correspond one-to-one with slots; the last
// two are multi-slot tags with special placement rules.
const (
	TypeHelm            ItemType = "helm"
	TypeWeapon          ItemType = "weapon"
	TypeShield          ItemType = "shield"
	TypeArmor           ItemType = "armor"
	TypeGloves          ItemType = "gloves"
	TypeTwoHandedWeapon ItemType = "two_handed_weapon"
	TypeRobe            ItemType = "robe"
)

// String returns the string representation of the item type
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the item type is a known tag
func (t ItemType) IsValid() bool {
	switch t {
	case TypeHelm, TypeWeapon, TypeShield, TypeArmor, TypeGloves,
		TypeTwoHandedWeapon, TypeRobe:
		return true
	default:
		return false
	}
}

// AllItemTypes returns a slice of all valid item type tags
func AllItemTypes() []ItemType {
	return []ItemType{
		TypeHelm,
		TypeWeapon,
		TypeShield,
		TypeArmor,
		TypeGloves,
		TypeTwoHandedWeapon,
		TypeRobe,
	}
}

// ItemTypeSet is the set of type tags on an item. It determines every slot
// the item can occupy and is immutable after the item is created.
type ItemTypeSet []ItemType

// NewItemTypeSet builds a set from the given tags, dropping duplicates
func NewItemTypeSet(types ...ItemType) ItemTypeSet {
	set := make(ItemTypeSet, 0, len(types))
	for _, t := range types {
		if !set.Contains(t) {
			set = append(set, t)
		}
	}
	return set
}

// Contains reports whether the set includes the given tag
func (s ItemTypeSet) Contains(t ItemType) bool {
	for _, existing := range s {
		if existing == t {
			return true
		}
	}
	return false
}

// Validate checks that the set is non-empty and every tag is known
func (s ItemTypeSet) Validate() error {
	if len(s) == 0 {
		return errors.InvalidArgument("item type set cannot be empty")
	}
	for _, t := range s {
		if !t.IsValid() {
			return errors.InvalidArgumentf("unknown item type: %s", t)
		}
	}
	return nil
}

// ItemDefinition describes an item in the catalog
type ItemDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Types       ItemTypeSet `json:"item_types"`
}

// EquippedEntry records the item a hero has equipped in one slot
type EquippedEntry struct {
	HeroID string `json:"hero_id"`
	Slot   Slot   `json:"slot"`
	ItemID string `json:"item_id"`
}

// InventoryEntry records how many of an item a hero owns. Equipping an item
// references the inventory but never decrements it.
type InventoryEntry struct {
	HeroID   string `json:"hero_id"`
	ItemID   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
}

// Loadout is a snapshot of a hero's five equipment cells. Slots with no
// equipped item are absent from the map.
type Loadout struct {
	HeroID string          `json:"hero_id"`
	Slots  map[Slot]string `json:"slots"`
}

// NewLoadout creates an empty loadout for a hero
func NewLoadout(heroID string) *Loadout {
	return &Loadout{
		HeroID: heroID,
		Slots:  make(map[Slot]string, len(AllSlots())),
	}
}

// ItemAt returns the item equipped in the given slot, if any
func (l *Loadout) ItemAt(slot Slot) (string, bool) {
	itemID, ok := l.Slots[slot]
	return itemID, ok
}
