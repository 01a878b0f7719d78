package equipped

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/questkeep/hero-api/internal/entities/gear"
	"github.com/questkeep/hero-api/internal/errors"
	redisclient "github.com/questkeep/hero-api/internal/redis"
)

const (
	equipmentKeyPrefix = "equipment:hero:"

	// Bounded optimistic retries for the per-hero transaction
	maxTxRetries = 5

	// Error messages
	errHeroIDEmpty = "hero ID cannot be empty"
	errItemIDEmpty = "item ID cannot be empty"
	errSlotInvalid = "slot is invalid"
)

type redisStore struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis equipment store.
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

// NewRedis creates a new Redis-backed equipment store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisStore{
		client: cfg.Client,
	}, nil
}

func validateCell(heroID string, slot gear.Slot) error {
	if heroID == "" {
		return errors.InvalidArgument(errHeroIDEmpty)
	}
	if !slot.IsValid() {
		return errors.InvalidArgumentf("%s: %s", errSlotInvalid, slot)
	}
	return nil
}

func cellKey(heroID string, slot gear.Slot) string {
	return equipmentKeyPrefix + heroID + ":" + slot.String()
}

func heroSlotKeys(heroID string) []string {
	slots := gear.AllSlots()
	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = cellKey(heroID, slot)
	}
	return keys
}

func (r *redisStore) GetEquipped(ctx context.Context, input GetEquippedInput) (*GetEquippedOutput, error) {
	if err := validateCell(input.HeroID, input.Slot); err != nil {
		return nil, err
	}

	return getCell(ctx, r.client, input.HeroID, input.Slot)
}

func (r *redisStore) SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error) {
	if err := validateCell(input.HeroID, input.Slot); err != nil {
		return nil, err
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := cellKey(input.HeroID, input.Slot)
	if err := r.client.Set(ctx, key, input.ItemID, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to set equipment for hero "+input.HeroID)
	}

	return &SetEquippedOutput{
		Entry: &gear.EquippedEntry{
			HeroID: input.HeroID,
			Slot:   input.Slot,
			ItemID: input.ItemID,
		},
	}, nil
}

func (r *redisStore) ClearEquipped(ctx context.Context, input ClearEquippedInput) (*ClearEquippedOutput, error) {
	if err := validateCell(input.HeroID, input.Slot); err != nil {
		return nil, err
	}

	key := cellKey(input.HeroID, input.Slot)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to clear equipment for hero "+input.HeroID)
	}

	return &ClearEquippedOutput{Cleared: deleted > 0}, nil
}

func (r *redisStore) GetLoadout(ctx context.Context, input GetLoadoutInput) (*GetLoadoutOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}

	return getLoadout(ctx, r.client, input.HeroID)
}

// WithHeroTransaction implements the serializability contract with WATCH
// over the hero's five cell keys: if any of them changes between the reads
// inside fn and the final EXEC, the whole sequence is re-run against a
// fresh pre-image.
func (r *redisStore) WithHeroTransaction(ctx context.Context, heroID string, fn func(ctx context.Context, tx Store) error) error {
	if heroID == "" {
		return errors.InvalidArgument(errHeroIDEmpty)
	}
	if fn == nil {
		return errors.InvalidArgument("fn cannot be nil")
	}

	keys := heroSlotKeys(heroID)

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			ts := &txStore{heroID: heroID, tx: tx}
			if err := fn(ctx, ts); err != nil {
				return err
			}
			if len(ts.ops) == 0 {
				return nil
			}

			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, op := range ts.ops {
					op(pipe)
				}
				return nil
			})
			return err
		}, keys...)

		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			continue
		}

		// fn's own errors pass through unchanged
		var coded *errors.Error
		if errors.As(err, &coded) {
			return err
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "equipment transaction failed for hero "+heroID)
	}

	return errors.Abortedf("concurrent equipment update for hero %s", heroID)
}

// txStore is the transactional view handed to WithHeroTransaction callbacks.
// Reads go through the watched connection and observe the pre-image; writes
// are buffered and applied in one MULTI/EXEC when the callback returns.
type txStore struct {
	heroID string
	tx     *redis.Tx
	ops    []func(pipe redis.Pipeliner)
}

func (t *txStore) checkScope(heroID string) error {
	if heroID != t.heroID {
		return errors.InvalidArgumentf("transaction is scoped to hero %s", t.heroID)
	}
	return nil
}

func (t *txStore) GetEquipped(ctx context.Context, input GetEquippedInput) (*GetEquippedOutput, error) {
	if err := validateCell(input.HeroID, input.Slot); err != nil {
		return nil, err
	}
	if err := t.checkScope(input.HeroID); err != nil {
		return nil, err
	}

	return getCell(ctx, t.tx, input.HeroID, input.Slot)
}

func (t *txStore) SetEquipped(ctx context.Context, input SetEquippedInput) (*SetEquippedOutput, error) {
	if err := validateCell(input.HeroID, input.Slot); err != nil {
		return nil, err
	}
	if err := t.checkScope(input.HeroID); err != nil {
		return nil, err
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := cellKey(input.HeroID, input.Slot)
	t.ops = append(t.ops, func(pipe redis.Pipeliner) {
		pipe.Set(ctx, key, input.ItemID, 0)
	})

	return &SetEquippedOutput{
		Entry: &gear.EquippedEntry{
			HeroID: input.HeroID,
			Slot:   input.Slot,
			ItemID: input.ItemID,
		},
	}, nil
}

func (t *txStore) ClearEquipped(ctx context.Context, input ClearEquippedInput) (*ClearEquippedOutput, error) {
	if err := validateCell(input.HeroID, input.Slot); err != nil {
		return nil, err
	}
	if err := t.checkScope(input.HeroID); err != nil {
		return nil, err
	}

	key := cellKey(input.HeroID, input.Slot)

	// Report against the pre-image; the delete itself is deferred to EXEC.
	occupied, err := t.tx.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check equipment for hero "+input.HeroID)
	}

	t.ops = append(t.ops, func(pipe redis.Pipeliner) {
		pipe.Del(ctx, key)
	})

	return &ClearEquippedOutput{Cleared: occupied > 0}, nil
}

func (t *txStore) GetLoadout(ctx context.Context, input GetLoadoutInput) (*GetLoadoutOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}
	if err := t.checkScope(input.HeroID); err != nil {
		return nil, err
	}

	return getLoadout(ctx, t.tx, input.HeroID)
}

// WithHeroTransaction on an already-transactional view runs fn in place
func (t *txStore) WithHeroTransaction(ctx context.Context, heroID string, fn func(ctx context.Context, tx Store) error) error {
	if err := t.checkScope(heroID); err != nil {
		return err
	}
	return fn(ctx, t)
}

// getCell reads one equipment cell through any command-capable connection
func getCell(ctx context.Context, c redis.Cmdable, heroID string, slot gear.Slot) (*GetEquippedOutput, error) {
	key := cellKey(heroID, slot)
	itemID, err := c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no item equipped in %s for hero %s", slot, heroID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment for hero "+heroID)
	}

	return &GetEquippedOutput{
		Entry: &gear.EquippedEntry{
			HeroID: heroID,
			Slot:   slot,
			ItemID: itemID,
		},
	}, nil
}

// getLoadout reads all five cells in one MGET
func getLoadout(ctx context.Context, c redis.Cmdable, heroID string) (*GetLoadoutOutput, error) {
	slots := gear.AllSlots()
	values, err := c.MGet(ctx, heroSlotKeys(heroID)...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get loadout for hero "+heroID)
	}

	loadout := gear.NewLoadout(heroID)
	for i, value := range values {
		if value == nil {
			continue
		}
		if itemID, ok := value.(string); ok && itemID != "" {
			loadout.Slots[slots[i]] = itemID
		}
	}

	return &GetLoadoutOutput{Loadout: loadout}, nil
}

// GetKey returns the Redis key for one equipment cell.
// Exposed for testing purposes.
func GetKey(heroID string, slot gear.Slot) string {
	return cellKey(heroID, slot)
}
