package presets

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*damage.Preset
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*damage.Preset),
	}
}

// GetByName retrieves a preset by name
func (r *InMemoryRepository) GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidInput(errPresetNameEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	preset, exists := r.store[input.Name]
	if !exists {
		return nil, errors.PresetNotFoundf("preset %q not found", input.Name)
	}

	// Return a copy to prevent external modification
	return &GetByNameOutput{Preset: preset.Clone()}, nil
}

// List retrieves all presets sorted by name
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*damage.Preset, 0, len(r.store))
	for _, preset := range r.store {
		result = append(result, preset.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return &ListOutput{Presets: result}, nil
}

// ListByTag retrieves presets carrying the given tag, sorted by name
func (r *InMemoryRepository) ListByTag(ctx context.Context, input ListByTagInput) (*ListByTagOutput, error) {
	if input.Tag == "" {
		return nil, errors.InvalidInput(errTagEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*damage.Preset, 0)
	for _, preset := range r.store {
		if preset.HasTag(input.Tag) {
			result = append(result, preset.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return &ListByTagOutput{Presets: result}, nil
}

// Save stores a preset, replacing any existing preset with the same name
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validatePreset(input.Preset); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Preset.Name] = input.Preset.Clone()

	return &SaveOutput{Preset: input.Preset.Clone()}, nil
}

// Seed bulk-loads presets, replacing same-named entries
func (r *InMemoryRepository) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	for i, preset := range input.Presets {
		if preset == nil {
			return nil, errors.InvalidInputf("preset at index %d cannot be nil", i)
		}
		if err := validatePreset(preset); err != nil {
			return nil, errors.Wrapf(err, "invalid preset %q", preset.Name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, preset := range input.Presets {
		r.store[preset.Name] = preset.Clone()
	}

	return &SeedOutput{Count: len(input.Presets)}, nil
}
