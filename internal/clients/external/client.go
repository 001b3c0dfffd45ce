// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-damage/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

// SRD equipment categories whose entries carry damage dice
const (
	CategorySimpleWeapons  = "simple-weapons"
	CategoryMartialWeapons = "martial-weapons"
)

// weaponCategories lists the categories walked by ListWeaponDamagePresets
var weaponCategories = []string{CategorySimpleWeapons, CategoryMartialWeapons}

// Client defines the interface for external SRD interactions
type Client interface {
	// ListWeaponDamagePresets converts the SRD weapon tables into damage
	// presets, named by equipment key. Entries without usable damage dice
	// (nets, unarmed variants) are skipped.
	ListWeaponDamagePresets(ctx context.Context) ([]*damage.Preset, error)

	// ListDamageTypes returns the SRD damage type vocabulary
	ListDamageTypes(ctx context.Context) ([]damage.DamageType, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	// Set defaults if not provided
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Create the base D&D 5e API client
	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// Wrap with caching so repeated catalog imports stay cheap
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) ListWeaponDamagePresets(_ context.Context) ([]*damage.Preset, error) {
	var weaponPresets []*damage.Preset
	for _, category := range weaponCategories {
		categoryPresets, err := c.loadWeaponPresets(category)
		if err != nil {
			return nil, err
		}
		weaponPresets = append(weaponPresets, categoryPresets...)
	}
	return weaponPresets, nil
}

// loadWeaponPresets loads full equipment details for one category
// concurrently and converts the weapons that carry damage dice
func (c *client) loadWeaponPresets(category string) ([]*damage.Preset, error) {
	equipmentCategory, err := c.dnd5eClient.GetEquipmentCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment category %s from D&D 5e API: %w", category, err)
	}

	refs := equipmentCategory.Equipment
	slog.Info("Loading weapon details concurrently", "category", category, "count", len(refs))

	loaded := make([]*damage.Preset, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string, name string) {
			defer wg.Done()

			// Get full equipment details (cached after first call)
			equipmentItem, err := c.dnd5eClient.GetEquipment(key)
			if err != nil {
				slog.Error("Failed to get equipment details", "equipment", key, "error", err)
				errChan <- fmt.Errorf("failed to get equipment %s: %w", key, err)
				return
			}

			preset, ok := weaponToPreset(equipmentItem)
			if !ok {
				slog.Debug("Skipped equipment without usable damage dice", "equipment", name)
				return
			}
			loaded[idx] = preset
			slog.Debug("Loaded weapon preset", "preset", preset.Name, "dice", preset.DiceCount, "die_type", preset.DieType)
		}(i, ref.Key, ref.Name)
	}

	wg.Wait()
	close(errChan)

	// Check for any errors
	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	// Drop the skipped slots, preserving category order
	weaponPresets := make([]*damage.Preset, 0, len(loaded))
	for _, preset := range loaded {
		if preset != nil {
			weaponPresets = append(weaponPresets, preset)
		}
	}
	return weaponPresets, nil
}

// weaponToPreset converts one SRD equipment entry into a damage preset.
// It reports false for non-weapons and for weapons whose damage cannot be
// expressed in the dice table.
func weaponToPreset(equipment dnd5e.EquipmentInterface) (*damage.Preset, bool) {
	weapon, ok := equipment.(*entities.Weapon)
	if !ok {
		return nil, false
	}
	if weapon.Damage == nil || weapon.Damage.DamageDice == "" {
		return nil, false
	}
	if weapon.Damage.DamageType == nil || weapon.Damage.DamageType.Name == "" {
		return nil, false
	}

	diceCount, dieType, modifier, err := damage.ParseNotation(weapon.Damage.DamageDice)
	if err != nil {
		return nil, false
	}

	tags := []string{"weapon"}
	if weapon.WeaponCategory != "" {
		tags = append(tags, strings.ToLower(weapon.WeaponCategory))
	}
	if weapon.WeaponRange != "" {
		tags = append(tags, strings.ToLower(weapon.WeaponRange))
	}

	return &damage.Preset{
		Name:       weapon.Key,
		DiceCount:  diceCount,
		DieType:    dieType,
		Modifier:   modifier,
		DamageType: damage.DamageType(strings.ToLower(weapon.Damage.DamageType.Name)),
		Tags:       tags,
	}, true
}

func (c *client) ListDamageTypes(_ context.Context) ([]damage.DamageType, error) {
	refs, err := c.dnd5eClient.ListDamageTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to list damage types from D&D 5e API: %w", err)
	}

	damageTypes := make([]damage.DamageType, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		damageTypes = append(damageTypes, damage.DamageType(ref.Key))
	}
	return damageTypes, nil
}
