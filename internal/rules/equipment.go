// Package rules implements the equipment compatibility rules: which item
// type tags may occupy which slots, including the two multi-slot overrides.
//
// Everything here is pure and invoked before any persistence write.
package rules

import (
	"github.com/questkeep/hero-api/internal/entities/gear"
)

// CanEquip reports whether an item may legally occupy the given slot.
//
// Exactly three conditions make the placement legal:
//  1. the slot's own tag is in the item's type set (helm item in helm slot)
//  2. the item is a two-handed weapon and the slot is weapon or shield
//  3. the item is a robe and the slot is armor or helm
func CanEquip(item *gear.ItemDefinition, slot gear.Slot) bool {
	if item == nil || !slot.IsValid() {
		return false
	}

	if item.Types.Contains(gear.ItemType(slot)) {
		return true
	}

	if item.Types.Contains(gear.TypeTwoHandedWeapon) {
		if slot == gear.SlotWeapon || slot == gear.SlotShield {
			return true
		}
	}

	if item.Types.Contains(gear.TypeRobe) {
		if slot == gear.SlotArmor || slot == gear.SlotHelm {
			return true
		}
	}

	return false
}

// IsTwoHanded reports whether the item carries the two_handed_weapon tag
func IsTwoHanded(item *gear.ItemDefinition) bool {
	return item != nil && item.Types.Contains(gear.TypeTwoHandedWeapon)
}

// SiblingSlot returns the paired hand slot for weapon/shield. A two-handed
// weapon written into one of the pair forces the other to be cleared.
// The second return is false for slots with no sibling.
func SiblingSlot(slot gear.Slot) (gear.Slot, bool) {
	switch slot {
	case gear.SlotWeapon:
		return gear.SlotShield, true
	case gear.SlotShield:
		return gear.SlotWeapon, true
	default:
		return "", false
	}
}
