package equipment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/questkeep/hero-api/internal/entities/gear"
	"github.com/questkeep/hero-api/internal/errors"
	"github.com/questkeep/hero-api/internal/orchestrators/equipment"
	"github.com/questkeep/hero-api/internal/repositories/catalog"
	catalogmock "github.com/questkeep/hero-api/internal/repositories/catalog/mock"
	"github.com/questkeep/hero-api/internal/repositories/equipped"
	equippedmock "github.com/questkeep/hero-api/internal/repositories/equipped/mock"
	"github.com/questkeep/hero-api/internal/repositories/inventory"
	inventorymock "github.com/questkeep/hero-api/internal/repositories/inventory/mock"
)

const testHeroID = "hero_test123"

type EquipmentOrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCatalog   *catalogmock.MockRepository
	mockStore     *equippedmock.MockStore
	mockInventory *inventorymock.MockRepository
	service       equipment.Service
	ctx           context.Context
}

func (s *EquipmentOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockRepository(s.ctrl)
	s.mockStore = equippedmock.NewMockStore(s.ctrl)
	s.mockInventory = inventorymock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	service, err := equipment.NewOrchestrator(&equipment.Config{
		CatalogRepo:   s.mockCatalog,
		EquippedStore: s.mockStore,
		InventoryRepo: s.mockInventory,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *EquipmentOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// Test helpers

func (s *EquipmentOrchestratorTestSuite) expectItem(item *gear.ItemDefinition) {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalog.GetInput{ItemID: item.ID}).
		Return(&catalog.GetOutput{Item: item}, nil)
}

// expectTransaction runs the equip callback against the same mock store so
// per-cell expectations can be declared inline
func (s *EquipmentOrchestratorTestSuite) expectTransaction() {
	s.mockStore.EXPECT().
		WithHeroTransaction(s.ctx, testHeroID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, heroID string, fn func(context.Context, equipped.Store) error) error {
			return fn(ctx, s.mockStore)
		})
}

func (s *EquipmentOrchestratorTestSuite) expectLoadout(slots map[gear.Slot]string) {
	loadout := gear.NewLoadout(testHeroID)
	for slot, itemID := range slots {
		loadout.Slots[slot] = itemID
	}
	s.mockStore.EXPECT().
		GetLoadout(s.ctx, equipped.GetLoadoutInput{HeroID: testHeroID}).
		Return(&equipped.GetLoadoutOutput{Loadout: loadout}, nil)
}

func helmItem() *gear.ItemDefinition {
	return &gear.ItemDefinition{
		ID:    "iron_helm",
		Name:  "Iron Helm",
		Types: gear.NewItemTypeSet(gear.TypeHelm),
	}
}

func greatswordItem() *gear.ItemDefinition {
	return &gear.ItemDefinition{
		ID:    "greatsword",
		Name:  "Greatsword",
		Types: gear.NewItemTypeSet(gear.TypeTwoHandedWeapon),
	}
}

func robeItem() *gear.ItemDefinition {
	return &gear.ItemDefinition{
		ID:    "wizard_robe",
		Name:  "Wizard Robe",
		Types: gear.NewItemTypeSet(gear.TypeRobe),
	}
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_DirectMatch() {
	item := helmItem()
	s.expectItem(item)
	s.expectTransaction()
	s.expectLoadout(map[gear.Slot]string{gear.SlotArmor: "chainmail"})

	s.mockStore.EXPECT().
		SetEquipped(s.ctx, equipped.SetEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotHelm,
			ItemID: "iron_helm",
		}).
		Return(&equipped.SetEquippedOutput{
			Entry: &gear.EquippedEntry{HeroID: testHeroID, Slot: gear.SlotHelm, ItemID: "iron_helm"},
		}, nil)

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "iron_helm",
		Slot:   gear.SlotHelm,
	})
	s.Require().NoError(err)

	s.Equal("iron_helm", output.Entry.ItemID)
	s.Nil(output.ClearedSlot)
	s.Equal(map[gear.Slot]string{
		gear.SlotArmor: "chainmail",
		gear.SlotHelm:  "iron_helm",
	}, output.Loadout.Slots)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_TwoHandedClearsShield() {
	item := greatswordItem()
	s.expectItem(item)
	s.expectTransaction()
	s.expectLoadout(map[gear.Slot]string{gear.SlotShield: "tower_shield"})

	s.mockStore.EXPECT().
		ClearEquipped(s.ctx, equipped.ClearEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotShield,
		}).
		Return(&equipped.ClearEquippedOutput{Cleared: true}, nil)

	s.mockStore.EXPECT().
		SetEquipped(s.ctx, equipped.SetEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotWeapon,
			ItemID: "greatsword",
		}).
		Return(&equipped.SetEquippedOutput{
			Entry: &gear.EquippedEntry{HeroID: testHeroID, Slot: gear.SlotWeapon, ItemID: "greatsword"},
		}, nil)

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "greatsword",
		Slot:   gear.SlotWeapon,
	})
	s.Require().NoError(err)

	s.Require().NotNil(output.ClearedSlot)
	s.Equal(gear.SlotShield, *output.ClearedSlot)
	s.Equal(map[gear.Slot]string{
		gear.SlotWeapon: "greatsword",
	}, output.Loadout.Slots)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_TwoHandedIntoShieldClearsWeapon() {
	item := greatswordItem()
	s.expectItem(item)
	s.expectTransaction()
	s.expectLoadout(map[gear.Slot]string{gear.SlotWeapon: "longsword"})

	s.mockStore.EXPECT().
		ClearEquipped(s.ctx, equipped.ClearEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotWeapon,
		}).
		Return(&equipped.ClearEquippedOutput{Cleared: true}, nil)

	s.mockStore.EXPECT().
		SetEquipped(s.ctx, equipped.SetEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotShield,
			ItemID: "greatsword",
		}).
		Return(&equipped.SetEquippedOutput{
			Entry: &gear.EquippedEntry{HeroID: testHeroID, Slot: gear.SlotShield, ItemID: "greatsword"},
		}, nil)

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "greatsword",
		Slot:   gear.SlotShield,
	})
	s.Require().NoError(err)

	s.Require().NotNil(output.ClearedSlot)
	s.Equal(gear.SlotWeapon, *output.ClearedSlot)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_TwoHandedEmptySiblingNotReported() {
	item := greatswordItem()
	s.expectItem(item)
	s.expectTransaction()
	s.expectLoadout(map[gear.Slot]string{})

	s.mockStore.EXPECT().
		ClearEquipped(s.ctx, equipped.ClearEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotShield,
		}).
		Return(&equipped.ClearEquippedOutput{Cleared: false}, nil)

	s.mockStore.EXPECT().
		SetEquipped(s.ctx, gomock.Any()).
		Return(&equipped.SetEquippedOutput{
			Entry: &gear.EquippedEntry{HeroID: testHeroID, Slot: gear.SlotWeapon, ItemID: "greatsword"},
		}, nil)

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "greatsword",
		Slot:   gear.SlotWeapon,
	})
	s.Require().NoError(err)
	s.Nil(output.ClearedSlot)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_RobeScenarios() {
	s.Run("robe into armor succeeds", func() {
		item := robeItem()
		s.expectItem(item)
		s.expectTransaction()
		s.expectLoadout(map[gear.Slot]string{})

		s.mockStore.EXPECT().
			SetEquipped(s.ctx, equipped.SetEquippedInput{
				HeroID: testHeroID,
				Slot:   gear.SlotArmor,
				ItemID: "wizard_robe",
			}).
			Return(&equipped.SetEquippedOutput{
				Entry: &gear.EquippedEntry{HeroID: testHeroID, Slot: gear.SlotArmor, ItemID: "wizard_robe"},
			}, nil)

		output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
			HeroID: testHeroID,
			ItemID: "wizard_robe",
			Slot:   gear.SlotArmor,
		})
		s.Require().NoError(err)
		s.Nil(output.ClearedSlot)
	})

	s.Run("robe into weapon rejected", func() {
		s.expectItem(robeItem())

		output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
			HeroID: testHeroID,
			ItemID: "wizard_robe",
			Slot:   gear.SlotWeapon,
		})
		s.Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Nil(output)
	})
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_IncompatibleSlotNoStateChange() {
	// No store expectations: a rejected equip must never touch the store
	s.expectItem(helmItem())

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "iron_helm",
		Slot:   gear.SlotWeapon,
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "cannot occupy slot")
	s.Nil(output)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_ItemNotFound() {
	s.mockCatalog.EXPECT().
		Get(s.ctx, catalog.GetInput{ItemID: "no_such_item"}).
		Return(nil, errors.NotFoundf("item %s not found", "no_such_item"))

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "no_such_item",
		Slot:   gear.SlotHelm,
	})
	s.Error(err)
	s.True(errors.IsNotFound(err))
	s.Nil(output)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_Validation() {
	testCases := []struct {
		name  string
		input *equipment.EquipInput
	}{
		{
			name:  "empty hero ID",
			input: &equipment.EquipInput{ItemID: "iron_helm", Slot: gear.SlotHelm},
		},
		{
			name:  "empty item ID",
			input: &equipment.EquipInput{HeroID: testHeroID, Slot: gear.SlotHelm},
		},
		{
			name:  "invalid slot",
			input: &equipment.EquipInput{HeroID: testHeroID, ItemID: "iron_helm", Slot: gear.Slot("boots")},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.Equip(s.ctx, tc.input)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(output)
		})
	}
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_ConcurrentConflictSurfaced() {
	s.expectItem(helmItem())
	s.mockStore.EXPECT().
		WithHeroTransaction(s.ctx, testHeroID, gomock.Any()).
		Return(errors.Abortedf("concurrent equipment update for hero %s", testHeroID))

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "iron_helm",
		Slot:   gear.SlotHelm,
	})
	s.Error(err)
	s.True(errors.IsAborted(err))
	s.Nil(output)
}

func (s *EquipmentOrchestratorTestSuite) TestEquip_Idempotent() {
	// Re-equipping the occupant of a slot succeeds and reports the same state
	item := helmItem()
	s.expectItem(item)
	s.expectTransaction()
	s.expectLoadout(map[gear.Slot]string{gear.SlotHelm: "iron_helm"})

	s.mockStore.EXPECT().
		SetEquipped(s.ctx, equipped.SetEquippedInput{
			HeroID: testHeroID,
			Slot:   gear.SlotHelm,
			ItemID: "iron_helm",
		}).
		Return(&equipped.SetEquippedOutput{
			Entry: &gear.EquippedEntry{HeroID: testHeroID, Slot: gear.SlotHelm, ItemID: "iron_helm"},
		}, nil)

	output, err := s.service.Equip(s.ctx, &equipment.EquipInput{
		HeroID: testHeroID,
		ItemID: "iron_helm",
		Slot:   gear.SlotHelm,
	})
	s.Require().NoError(err)
	s.Equal(map[gear.Slot]string{gear.SlotHelm: "iron_helm"}, output.Loadout.Slots)
}

func (s *EquipmentOrchestratorTestSuite) TestUnequip() {
	s.Run("occupied slot", func() {
		s.mockStore.EXPECT().
			ClearEquipped(s.ctx, equipped.ClearEquippedInput{
				HeroID: testHeroID,
				Slot:   gear.SlotWeapon,
			}).
			Return(&equipped.ClearEquippedOutput{Cleared: true}, nil)

		output, err := s.service.Unequip(s.ctx, &equipment.UnequipInput{
			HeroID: testHeroID,
			Slot:   gear.SlotWeapon,
		})
		s.Require().NoError(err)
		s.True(output.Cleared)
	})

	s.Run("empty slot is a no-op success", func() {
		s.mockStore.EXPECT().
			ClearEquipped(s.ctx, equipped.ClearEquippedInput{
				HeroID: testHeroID,
				Slot:   gear.SlotGloves,
			}).
			Return(&equipped.ClearEquippedOutput{Cleared: false}, nil)

		output, err := s.service.Unequip(s.ctx, &equipment.UnequipInput{
			HeroID: testHeroID,
			Slot:   gear.SlotGloves,
		})
		s.Require().NoError(err)
		s.False(output.Cleared)
	})

	s.Run("invalid slot", func() {
		output, err := s.service.Unequip(s.ctx, &equipment.UnequipInput{
			HeroID: testHeroID,
			Slot:   gear.Slot("cloak"),
		})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Nil(output)
	})
}

func (s *EquipmentOrchestratorTestSuite) TestGetLoadout() {
	loadout := gear.NewLoadout(testHeroID)
	loadout.Slots[gear.SlotWeapon] = "longsword"

	s.mockStore.EXPECT().
		GetLoadout(s.ctx, equipped.GetLoadoutInput{HeroID: testHeroID}).
		Return(&equipped.GetLoadoutOutput{Loadout: loadout}, nil)

	output, err := s.service.GetLoadout(s.ctx, &equipment.GetLoadoutInput{HeroID: testHeroID})
	s.Require().NoError(err)
	s.Equal(loadout, output.Loadout)
}

func (s *EquipmentOrchestratorTestSuite) TestGrantItem() {
	s.Run("success", func() {
		s.expectItem(helmItem())
		s.mockInventory.EXPECT().
			Add(s.ctx, inventory.AddInput{
				HeroID:   testHeroID,
				ItemID:   "iron_helm",
				Quantity: 2,
			}).
			Return(&inventory.AddOutput{
				Entry: &gear.InventoryEntry{HeroID: testHeroID, ItemID: "iron_helm", Quantity: 5},
			}, nil)

		output, err := s.service.GrantItem(s.ctx, &equipment.GrantItemInput{
			HeroID:   testHeroID,
			ItemID:   "iron_helm",
			Quantity: 2,
		})
		s.Require().NoError(err)
		s.Equal(int32(5), output.Entry.Quantity)
	})

	s.Run("unknown item", func() {
		s.mockCatalog.EXPECT().
			Get(s.ctx, catalog.GetInput{ItemID: "no_such_item"}).
			Return(nil, errors.NotFoundf("item %s not found", "no_such_item"))

		output, err := s.service.GrantItem(s.ctx, &equipment.GrantItemInput{
			HeroID:   testHeroID,
			ItemID:   "no_such_item",
			Quantity: 1,
		})
		s.Error(err)
		s.True(errors.IsNotFound(err))
		s.Nil(output)
	})

	s.Run("non-positive quantity", func() {
		output, err := s.service.GrantItem(s.ctx, &equipment.GrantItemInput{
			HeroID:   testHeroID,
			ItemID:   "iron_helm",
			Quantity: 0,
		})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Nil(output)
	})
}

func (s *EquipmentOrchestratorTestSuite) TestListInventory() {
	entries := []gear.InventoryEntry{
		{HeroID: testHeroID, ItemID: "iron_helm", Quantity: 2},
		{HeroID: testHeroID, ItemID: "longsword", Quantity: 1},
	}

	s.mockInventory.EXPECT().
		List(s.ctx, inventory.ListInput{HeroID: testHeroID}).
		Return(&inventory.ListOutput{Entries: entries}, nil)

	output, err := s.service.ListInventory(s.ctx, &equipment.ListInventoryInput{HeroID: testHeroID})
	s.Require().NoError(err)
	s.Equal(entries, output.Entries)
}

func (s *EquipmentOrchestratorTestSuite) TestNewOrchestrator_Validation() {
	testCases := []struct {
		name   string
		config *equipment.Config
		errMsg string
	}{
		{
			name: "missing catalog repo",
			config: &equipment.Config{
				EquippedStore: s.mockStore,
				InventoryRepo: s.mockInventory,
			},
			errMsg: "CatalogRepo",
		},
		{
			name: "missing equipped store",
			config: &equipment.Config{
				CatalogRepo:   s.mockCatalog,
				InventoryRepo: s.mockInventory,
			},
			errMsg: "EquippedStore",
		},
		{
			name: "missing inventory repo",
			config: &equipment.Config{
				CatalogRepo:   s.mockCatalog,
				EquippedStore: s.mockStore,
			},
			errMsg: "InventoryRepo",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			service, err := equipment.NewOrchestrator(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(service)
		})
	}
}

func TestEquipmentOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentOrchestratorTestSuite))
}
