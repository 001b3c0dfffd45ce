package presets

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-damage/internal/redis"
)

const (
	presetKeyPrefix      = "preset:"
	presetNameIndexKey   = "preset:names"
	presetTagIndexPrefix = "preset:tag:"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis preset repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidInput("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidInput("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed preset repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// presetData is the storage structure for presets
// This is what gets serialized to Redis
type presetData struct {
	Name       string   `json:"name"`
	DiceCount  int      `json:"dice_count"`
	DieType    string   `json:"die_type"`
	Modifier   int      `json:"modifier,omitempty"`
	DamageType string   `json:"damage_type"`
	Tags       []string `json:"tags,omitempty"`
}

func toPresetData(p *damage.Preset) presetData {
	return presetData{
		Name:       p.Name,
		DiceCount:  p.DiceCount,
		DieType:    string(p.DieType),
		Modifier:   p.Modifier,
		DamageType: string(p.DamageType),
		Tags:       p.Tags,
	}
}

func (d presetData) toPreset() *damage.Preset {
	return &damage.Preset{
		Name:       d.Name,
		DiceCount:  d.DiceCount,
		DieType:    damage.DieType(d.DieType),
		Modifier:   d.Modifier,
		DamageType: damage.DamageType(d.DamageType),
		Tags:       d.Tags,
	}
}

func (r *redisRepository) GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidInput(errPresetNameEmpty)
	}

	key := presetKeyPrefix + input.Name
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.PresetNotFoundf("preset %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get preset %q", input.Name)
	}

	var data presetData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal preset data")
	}

	return &GetByNameOutput{Preset: data.toPreset()}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	presets, err := r.listByIndex(ctx, presetNameIndexKey)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Presets: presets}, nil
}

func (r *redisRepository) ListByTag(ctx context.Context, input ListByTagInput) (*ListByTagOutput, error) {
	if input.Tag == "" {
		return nil, errors.InvalidInput(errTagEmpty)
	}

	indexKey := presetTagIndexPrefix + input.Tag
	presets, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	return &ListByTagOutput{Presets: presets}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validatePreset(input.Preset); err != nil {
		return nil, err
	}

	key := presetKeyPrefix + input.Preset.Name

	// Get existing preset to diff tag indexes
	var existingTags []string
	result, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing preset %q", input.Preset.Name)
	}
	if err == nil {
		var existing presetData
		if err := json.Unmarshal([]byte(result), &existing); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal existing preset data")
		}
		existingTags = existing.Tags
	}

	data, err := json.Marshal(toPresetData(input.Preset))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal preset data")
	}

	// Start transaction
	pipe := r.client.TxPipeline()

	// Set preset data
	pipe.Set(ctx, key, data, 0) // No TTL for presets

	// Add to name index
	pipe.SAdd(ctx, presetNameIndexKey, input.Preset.Name)

	// Remove stale tag index entries
	for _, tag := range existingTags {
		if !input.Preset.HasTag(tag) {
			pipe.SRem(ctx, presetTagIndexPrefix+tag, input.Preset.Name)
		}
	}

	// Add to tag indexes
	for _, tag := range input.Preset.Tags {
		pipe.SAdd(ctx, presetTagIndexPrefix+tag, input.Preset.Name)
	}

	// Execute transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save preset %q", input.Preset.Name)
	}

	return &SaveOutput{Preset: input.Preset.Clone()}, nil
}

// Seed bulk-loads presets in a single transaction. Unlike Save it does not
// prune tag index entries for presets whose tags changed.
func (r *redisRepository) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	for i, preset := range input.Presets {
		if preset == nil {
			return nil, errors.InvalidInputf("preset at index %d cannot be nil", i)
		}
		if err := validatePreset(preset); err != nil {
			return nil, errors.Wrapf(err, "invalid preset %q", preset.Name)
		}
	}

	pipe := r.client.TxPipeline()

	for _, preset := range input.Presets {
		data, err := json.Marshal(toPresetData(preset))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal preset %q", preset.Name)
		}

		pipe.Set(ctx, presetKeyPrefix+preset.Name, data, 0)
		pipe.SAdd(ctx, presetNameIndexKey, preset.Name)
		for _, tag := range preset.Tags {
			pipe.SAdd(ctx, presetTagIndexPrefix+tag, preset.Name)
		}
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed presets")
	}

	slog.Info("Preset catalog seeded",
		"count", len(input.Presets),
	)

	return &SeedOutput{Count: len(input.Presets)}, nil
}

// listByIndex is a helper function to list presets by any index
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*damage.Preset, error) {
	slog.DebugContext(ctx, "fetching preset names from index",
		"index_key", indexKey)

	names, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get presets from index %s", indexKey)
	}

	// Set members come back unordered
	sort.Strings(names)

	presets := make([]*damage.Preset, 0, len(names))
	for _, name := range names {
		getOutput, err := r.GetByName(ctx, GetByNameInput{Name: name})
		if err != nil {
			// If the preset doesn't exist, clean up the index
			if errors.IsPresetNotFound(err) {
				slog.WarnContext(ctx, "preset not found, cleaning up index",
					"preset_name", name,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, name)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get preset %q", name)
		}
		presets = append(presets, getOutput.Preset)
	}

	slog.DebugContext(ctx, "retrieved presets from index",
		"index_key", indexKey,
		"count", len(presets))

	return presets, nil
}

// GetKey returns the Redis key for a named preset
// Exposed for testing purposes
func GetKey(name string) string {
	return presetKeyPrefix + name
}
