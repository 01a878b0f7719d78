package catalog

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/questkeep/hero-api/internal/entities/gear"
	"github.com/questkeep/hero-api/internal/errors"
	redisclient "github.com/questkeep/hero-api/internal/redis"
)

const (
	itemKeyPrefix = "catalog:item:"

	// Error messages
	errItemIDEmpty = "item ID cannot be empty"
	errItemNil     = "item cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
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

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := itemKeyPrefix + input.ItemID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not found", input.ItemID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get item "+input.ItemID)
	}

	var item gear.ItemDefinition
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item %s", input.ItemID)
	}

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}
	if err := input.Item.Types.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item %s", input.Item.ID)
	}

	// SetNX keeps definitions immutable: first write wins.
	key := itemKeyPrefix + input.Item.ID
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store item "+input.Item.ID)
	}
	if !created {
		return nil, errors.AlreadyExists("item " + input.Item.ID + " already exists")
	}

	return &PutOutput{Item: input.Item}, nil
}

// GetKey returns the Redis key for an item definition.
// Exposed for testing purposes.
func GetKey(itemID string) string {
	return itemKeyPrefix + itemID
}
