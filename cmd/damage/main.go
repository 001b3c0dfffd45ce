// Package main is the entry point for the damage calculation CLI
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-damage/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	damageorch "github.com/KirkDiggler/rpg-damage/internal/orchestrators/damage"
	"github.com/KirkDiggler/rpg-damage/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-damage/internal/repositories/presets"
	redisclient "github.com/KirkDiggler/rpg-damage/internal/redis"
)

var (
	redisAddress string
	presetsFile  string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "damage",
	Short: "D&D 5e damage calculation CLI",
	Long: `Rolls damage specifications, applies resistance, distributes damage
across targets, and manages the preset catalog. Results print as JSON on
stdout; logs go to stderr.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddress, "redis-address", "",
		"Redis address backing the preset catalog (default: builtin catalog)")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets-file", "",
		"YAML preset catalog file (default: builtin catalog)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(distributeCmd)
	rootCmd.AddCommand(seedCmd)
}

func configureLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// newPresetRepository selects the catalog source from the persistent flags:
// Redis when an address is given, a YAML file when a path is given, the
// builtin SRD defaults otherwise.
func newPresetRepository(cmd *cobra.Command) (presets.Repository, error) {
	if redisAddress != "" {
		client, err := redisclient.NewClient(redisAddress, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		return presets.NewRedis(&presets.RedisConfig{Client: client})
	}

	repo := presets.NewInMemory()

	seed := presets.DefaultPresets()
	if presetsFile != "" {
		loaded, err := presets.LoadFile(presetsFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	if _, err := repo.Seed(cmd.Context(), presets.SeedInput{Presets: seed}); err != nil {
		return nil, err
	}
	return repo, nil
}

// newService wires the full calculation stack: toolkit dice roller behind
// the engine adapter, the configured preset catalog, and the orchestrator.
func newService(cmd *cobra.Command) (damageorch.Service, error) {
	presetRepo, err := newPresetRepository(cmd)
	if err != nil {
		return nil, err
	}

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, err
	}

	return damageorch.NewOrchestrator(&damageorch.Config{
		Engine:      adapter,
		PresetRepo:  presetRepo,
		IDGenerator: idgen.NewUUID("calc"),
	})
}

// buildDamageInput assembles a damage specification from either dice
// notation or the individual count/die/modifier flags. Notation wins when
// both are given.
func buildDamageInput(notation string, count int, die string, modifier int, damageType string) (*damage.Input, error) {
	if notation != "" {
		diceCount, dieType, parsedModifier, err := damage.ParseNotation(notation)
		if err != nil {
			return nil, err
		}
		return &damage.Input{
			DiceCount:  diceCount,
			DieType:    dieType,
			Modifier:   parsedModifier,
			DamageType: damage.DamageType(damageType),
		}, nil
	}

	return &damage.Input{
		DiceCount:  count,
		DieType:    damage.DieType(die),
		Modifier:   modifier,
		DamageType: damage.DamageType(damageType),
	}, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal output")
	}
	fmt.Println(string(out))
	return nil
}
