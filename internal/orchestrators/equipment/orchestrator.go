// Package equipment implements the equipment orchestrator: the single place
// where item-to-slot compatibility is checked and equipped-state mutations
// are computed and committed.
//
// The flow for every equip is validate, resolve the item from the catalog,
// check the rules, then apply all required cell mutations in one per-hero
// store transaction. A rejected equip never touches the store.
package equipment

//go:generate mockgen -destination=mock/mock_service.go -package=equipmentmock github.com/questkeep/hero-api/internal/orchestrators/equipment Service

import (
	"context"
	"log/slog"

	"github.com/questkeep/hero-api/internal/entities/gear"
	"github.com/questkeep/hero-api/internal/errors"
	"github.com/questkeep/hero-api/internal/repositories/catalog"
	"github.com/questkeep/hero-api/internal/repositories/equipped"
	"github.com/questkeep/hero-api/internal/repositories/inventory"
	"github.com/questkeep/hero-api/internal/rules"
)

// Service defines the interface for equipment operations
type Service interface {
	// Equip places an item into a slot, evicting the previous occupant
	// and clearing the sibling hand slot for two-handed weapons
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip empties a slot; a no-op success when already empty
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// GetLoadout reads a hero's full equipped state
	GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error)

	// GrantItem adds catalog items to a hero's inventory
	GrantItem(ctx context.Context, input *GrantItemInput) (*GrantItemOutput, error)

	// ListInventory reads a hero's owned items
	ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error)
}

// Config holds the dependencies for the equipment orchestrator
type Config struct {
	CatalogRepo   catalog.Repository
	EquippedStore equipped.Store
	InventoryRepo inventory.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.EquippedStore == nil {
		vb.RequiredField("EquippedStore")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo   catalog.Repository
	equippedStore equipped.Store
	inventoryRepo inventory.Repository
}

// NewOrchestrator creates a new equipment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogRepo:   cfg.CatalogRepo,
		equippedStore: cfg.EquippedStore,
		inventoryRepo: cfg.InventoryRepo,
	}, nil
}

// Equip validates the placement and commits all required mutations in one
// per-hero transaction. The two-handed rule clears the sibling hand slot
// unconditionally, whatever it held.
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot: %s", input.Slot)
	}

	getOutput, err := o.catalogRepo.Get(ctx, catalog.GetInput{ItemID: input.ItemID})
	if err != nil {
		return nil, err
	}
	item := getOutput.Item

	if !rules.CanEquip(item, input.Slot) {
		return nil, errors.FailedPreconditionf(
			"item %s cannot occupy slot %s", item.ID, input.Slot)
	}

	var (
		entry       *gear.EquippedEntry
		clearedSlot *gear.Slot
		snapshot    *gear.Loadout
	)

	err = o.equippedStore.WithHeroTransaction(ctx, input.HeroID, func(ctx context.Context, tx equipped.Store) error {
		// Reset per attempt; the callback re-runs on optimistic retry
		entry, clearedSlot, snapshot = nil, nil, nil

		loadoutOutput, err := tx.GetLoadout(ctx, equipped.GetLoadoutInput{HeroID: input.HeroID})
		if err != nil {
			return err
		}
		snapshot = loadoutOutput.Loadout

		if rules.IsTwoHanded(item) {
			if sibling, ok := rules.SiblingSlot(input.Slot); ok {
				clearOutput, err := tx.ClearEquipped(ctx, equipped.ClearEquippedInput{
					HeroID: input.HeroID,
					Slot:   sibling,
				})
				if err != nil {
					return err
				}
				if clearOutput.Cleared {
					clearedSlot = &sibling
				}
				delete(snapshot.Slots, sibling)
			}
		}

		setOutput, err := tx.SetEquipped(ctx, equipped.SetEquippedInput{
			HeroID: input.HeroID,
			Slot:   input.Slot,
			ItemID: item.ID,
		})
		if err != nil {
			return err
		}
		entry = setOutput.Entry
		snapshot.Slots[input.Slot] = item.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Item equipped",
		"hero_id", input.HeroID,
		"item_id", item.ID,
		"slot", input.Slot,
		"cleared_sibling", clearedSlot != nil,
	)

	return &EquipOutput{
		Entry:       entry,
		ClearedSlot: clearedSlot,
		Loadout:     snapshot,
	}, nil
}

// Unequip empties one cell. No cascading: removing one hand of a former
// two-handed placement leaves the other cell untouched (there is only one
// canonical cell per equipped two-handed weapon).
func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot: %s", input.Slot)
	}

	clearOutput, err := o.equippedStore.ClearEquipped(ctx, equipped.ClearEquippedInput{
		HeroID: input.HeroID,
		Slot:   input.Slot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unequip slot")
	}

	slog.Info("Slot unequipped",
		"hero_id", input.HeroID,
		"slot", input.Slot,
		"was_occupied", clearOutput.Cleared,
	)

	return &UnequipOutput{Cleared: clearOutput.Cleared}, nil
}

// GetLoadout reads all five cells for a hero
func (o *orchestrator) GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	loadoutOutput, err := o.equippedStore.GetLoadout(ctx, equipped.GetLoadoutInput{HeroID: input.HeroID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get loadout")
	}

	return &GetLoadoutOutput{Loadout: loadoutOutput.Loadout}, nil
}

// GrantItem adds owned quantity of a catalog item to a hero. Equipping
// never consumes inventory; this is the only path that changes it.
func (o *orchestrator) GrantItem(ctx context.Context, input *GrantItemInput) (*GrantItemOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	// Only items that exist in the catalog can be owned
	if _, err := o.catalogRepo.Get(ctx, catalog.GetInput{ItemID: input.ItemID}); err != nil {
		return nil, err
	}

	addOutput, err := o.inventoryRepo.Add(ctx, inventory.AddInput{
		HeroID:   input.HeroID,
		ItemID:   input.ItemID,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to grant item")
	}

	slog.Info("Item granted",
		"hero_id", input.HeroID,
		"item_id", input.ItemID,
		"quantity", input.Quantity,
		"total_owned", addOutput.Entry.Quantity,
	)

	return &GrantItemOutput{Entry: addOutput.Entry}, nil
}

// ListInventory reads a hero's owned items
func (o *orchestrator) ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	listOutput, err := o.inventoryRepo.List(ctx, inventory.ListInput{HeroID: input.HeroID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	return &ListInventoryOutput{Entries: listOutput.Entries}, nil
}
