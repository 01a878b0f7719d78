package inventory

import (
	"context"
	"sort"
	"strconv"

	"github.com/questkeep/hero-api/internal/entities/gear"
	"github.com/questkeep/hero-api/internal/errors"
	redisclient "github.com/questkeep/hero-api/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:hero:"

	// Error messages
	errHeroIDEmpty = "hero ID cannot be empty"
	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	key := inventoryKeyPrefix + input.HeroID
	total, err := r.client.HIncrBy(ctx, key, input.ItemID, int64(input.Quantity)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to add inventory for hero "+input.HeroID)
	}

	return &AddOutput{
		Entry: &gear.InventoryEntry{
			HeroID:   input.HeroID,
			ItemID:   input.ItemID,
			Quantity: int32(total), // #nosec G115 -- quantities stay far below int32 range
		},
	}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}

	key := inventoryKeyPrefix + input.HeroID
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list inventory for hero "+input.HeroID)
	}

	entries := make([]gear.InventoryEntry, 0, len(fields))
	for itemID, raw := range fields {
		quantity, parseErr := strconv.ParseInt(raw, 10, 32)
		if parseErr != nil {
			return nil, errors.Internalf("corrupt inventory quantity for hero %s item %s: %q", input.HeroID, itemID, raw)
		}
		entries = append(entries, gear.InventoryEntry{
			HeroID:   input.HeroID,
			ItemID:   itemID,
			Quantity: int32(quantity),
		})
	}

	// Stable ordering for callers and tests
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ItemID < entries[j].ItemID
	})

	return &ListOutput{Entries: entries}, nil
}

// GetKey returns the Redis key for a hero's inventory hash.
// Exposed for testing purposes.
func GetKey(heroID string) string {
	return inventoryKeyPrefix + heroID
}
