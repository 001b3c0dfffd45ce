package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-damage/internal/errors"
	damageorch "github.com/KirkDiggler/rpg-damage/internal/orchestrators/damage"
)

var (
	presetsListTag     string
	presetRollModifier int
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Inspect and roll the damage preset catalog",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the preset catalog, optionally filtered by tag",
	RunE:  runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a single preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsShow,
}

var presetsRollCmd = &cobra.Command{
	Use:   "roll <name>",
	Short: "Roll a preset, optionally overriding its modifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsRoll,
}

func init() {
	presetsListCmd.Flags().StringVar(&presetsListTag, "tag", "", "filter presets by tag")
	presetsRollCmd.Flags().IntVar(&presetRollModifier, "modifier", 0,
		"override the preset's modifier")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsRollCmd)
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	if presetsListTag != "" {
		output, err := svc.ListPresetsByTag(cmd.Context(), &damageorch.ListPresetsByTagInput{
			Tag: presetsListTag,
		})
		if err != nil {
			return err
		}
		return printJSON(output.Presets)
	}

	output, err := svc.ListPresets(cmd.Context(), &damageorch.ListPresetsInput{})
	if err != nil {
		return err
	}
	return printJSON(output.Presets)
}

func runPresetsShow(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	output, err := svc.GetPresetByName(cmd.Context(), &damageorch.GetPresetByNameInput{
		Name: args[0],
	})
	if err != nil {
		return err
	}
	if !output.Found {
		return errors.PresetNotFoundf("preset %q not found", args[0])
	}

	return printJSON(output.Preset)
}

func runPresetsRoll(cmd *cobra.Command, args []string) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	input := &damageorch.CalculateDamageFromPresetInput{
		PresetName: args[0],
	}
	if cmd.Flags().Changed("modifier") {
		input.ModifierOverride = &presetRollModifier
	}

	output, err := svc.CalculateDamageFromPreset(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printJSON(output.Result)
}
