package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-damage/internal/clients/external"
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	"github.com/KirkDiggler/rpg-damage/internal/repositories/presets"
	redisclient "github.com/KirkDiggler/rpg-damage/internal/redis"
)

var seedSource string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a preset catalog into Redis",
	Long: `Seeds the Redis preset catalog from one of three sources: the builtin
SRD defaults, a YAML file (--presets-file), or the live SRD API weapon
tables (--source srd). Requires --redis-address.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedSource, "source", "builtin",
		"catalog source (builtin, file, srd)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if redisAddress == "" {
		return errors.InvalidInput("seed requires --redis-address")
	}

	client, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	repo, err := presets.NewRedis(&presets.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	var catalog []*damage.Preset
	switch seedSource {
	case "builtin":
		catalog = presets.DefaultPresets()
	case "file":
		if presetsFile == "" {
			return errors.InvalidInput("--source file requires --presets-file")
		}
		catalog, err = presets.LoadFile(presetsFile)
		if err != nil {
			return err
		}
	case "srd":
		srdClient, err := external.New(&external.Config{})
		if err != nil {
			return err
		}
		catalog, err = srdClient.ListWeaponDamagePresets(cmd.Context())
		if err != nil {
			return errors.Wrap(err, "failed to import SRD weapon presets")
		}
	default:
		return errors.InvalidInputf("unrecognized seed source %q", seedSource)
	}

	output, err := repo.Seed(cmd.Context(), presets.SeedInput{Presets: catalog})
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d presets from %s\n", output.Count, seedSource)
	return nil
}
