package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/questkeep/hero-api/internal/entities/gear"
	"github.com/questkeep/hero-api/internal/errors"
	"github.com/questkeep/hero-api/internal/orchestrators/equipment"
	"github.com/questkeep/hero-api/internal/repositories/catalog"
)

// starterItems is the catalog seeded by `hero-api seed`. Covers every slot
// plus the two multi-slot item kinds.
var starterItems = []*gear.ItemDefinition{
	{ID: "leather_cap", Name: "Leather Cap", Types: gear.NewItemTypeSet(gear.TypeHelm)},
	{ID: "iron_helm", Name: "Iron Helm", Types: gear.NewItemTypeSet(gear.TypeHelm)},
	{ID: "longsword", Name: "Longsword", Types: gear.NewItemTypeSet(gear.TypeWeapon)},
	{ID: "buckler", Name: "Buckler", Types: gear.NewItemTypeSet(gear.TypeShield)},
	{ID: "tower_shield", Name: "Tower Shield", Types: gear.NewItemTypeSet(gear.TypeShield)},
	{ID: "chainmail", Name: "Chainmail", Types: gear.NewItemTypeSet(gear.TypeArmor)},
	{ID: "leather_gloves", Name: "Leather Gloves", Types: gear.NewItemTypeSet(gear.TypeGloves)},
	{ID: "greatsword", Name: "Greatsword", Description: "Needs both hands.", Types: gear.NewItemTypeSet(gear.TypeTwoHandedWeapon)},
	{ID: "warhammer", Name: "Warhammer", Description: "Needs both hands.", Types: gear.NewItemTypeSet(gear.TypeTwoHandedWeapon)},
	{ID: "wizard_robe", Name: "Wizard Robe", Description: "Covers head and body.", Types: gear.NewItemTypeSet(gear.TypeRobe)},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the item catalog with starter definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		for _, item := range starterItems {
			_, err := d.catalogRepo.Put(cmd.Context(), catalog.PutInput{Item: item})
			switch {
			case errors.IsAlreadyExists(err):
				fmt.Printf("skipped %s (already in catalog)\n", item.ID)
			case err != nil:
				return err
			default:
				fmt.Printf("seeded %s\n", item.ID)
			}
		}
		return nil
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip <hero-id> <item-id> <slot>",
	Short: "Equip an item into a hero's slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		output, err := d.service.Equip(cmd.Context(), &equipment.EquipInput{
			HeroID: args[0],
			ItemID: args[1],
			Slot:   gear.Slot(args[2]),
		})
		if err != nil {
			return err
		}

		fmt.Printf("equipped %s at %s\n", output.Entry.ItemID, output.Entry.Slot)
		if output.ClearedSlot != nil {
			fmt.Printf("cleared %s (two-handed weapon)\n", *output.ClearedSlot)
		}
		printLoadout(output.Loadout)
		return nil
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip <hero-id> <slot>",
	Short: "Empty a hero's slot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		output, err := d.service.Unequip(cmd.Context(), &equipment.UnequipInput{
			HeroID: args[0],
			Slot:   gear.Slot(args[1]),
		})
		if err != nil {
			return err
		}

		if output.Cleared {
			fmt.Printf("unequipped %s\n", args[1])
		} else {
			fmt.Printf("%s was already empty\n", args[1])
		}
		return nil
	},
}

var loadoutCmd = &cobra.Command{
	Use:   "loadout <hero-id>",
	Short: "Show a hero's equipped items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		output, err := d.service.GetLoadout(cmd.Context(), &equipment.GetLoadoutInput{
			HeroID: args[0],
		})
		if err != nil {
			return err
		}

		printLoadout(output.Loadout)
		return nil
	},
}

var grantCmd = &cobra.Command{
	Use:   "grant <hero-id> <item-id> [quantity]",
	Short: "Add catalog items to a hero's inventory",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity := int32(1)
		if len(args) == 3 {
			if _, err := fmt.Sscanf(args[2], "%d", &quantity); err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[2], err)
			}
		}

		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		output, err := d.service.GrantItem(cmd.Context(), &equipment.GrantItemInput{
			HeroID:   args[0],
			ItemID:   args[1],
			Quantity: quantity,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s now owns %d x %s\n", args[0], output.Entry.Quantity, output.Entry.ItemID)
		return nil
	},
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory <hero-id>",
	Short: "List a hero's owned items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		output, err := d.service.ListInventory(cmd.Context(), &equipment.ListInventoryInput{
			HeroID: args[0],
		})
		if err != nil {
			return err
		}

		if len(output.Entries) == 0 {
			fmt.Println("(empty inventory)")
			return nil
		}
		for _, entry := range output.Entries {
			fmt.Printf("%4d x %s\n", entry.Quantity, entry.ItemID)
		}
		return nil
	},
}

func printLoadout(loadout *gear.Loadout) {
	slots := make([]gear.Slot, 0, len(loadout.Slots))
	for slot := range loadout.Slots {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	if len(slots) == 0 {
		fmt.Println("(nothing equipped)")
		return
	}
	for _, slot := range slots {
		fmt.Printf("%-8s %s\n", slot+":", loadout.Slots[slot])
	}
}
