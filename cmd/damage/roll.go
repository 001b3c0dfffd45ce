package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	damageorch "github.com/KirkDiggler/rpg-damage/internal/orchestrators/damage"
)

var (
	rollNotation   string
	rollCount      int
	rollDie        string
	rollModifier   int
	rollDamageType string
	rollCritical   bool
	rollResistance string
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a damage specification",
	Long: `Rolls a damage specification given as dice notation (--dice 2d6+3) or as
individual flags. --critical doubles the dice, not the modifier.
--resistance additionally applies a resistance classification to the
rolled total.`,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollNotation, "dice", "", "dice notation, e.g. 2d6+3")
	rollCmd.Flags().IntVar(&rollCount, "count", 1, "number of dice")
	rollCmd.Flags().StringVar(&rollDie, "die", "d6", "die type (d4, d6, d8, d10, d12, d20, d100)")
	rollCmd.Flags().IntVar(&rollModifier, "modifier", 0, "flat modifier")
	rollCmd.Flags().StringVar(&rollDamageType, "type", "bludgeoning", "damage type tag")
	rollCmd.Flags().BoolVar(&rollCritical, "critical", false, "roll as a critical hit")
	rollCmd.Flags().StringVar(&rollResistance, "resistance", "",
		"apply a resistance classification (normal, resistant, vulnerable, immune)")
}

func runRoll(cmd *cobra.Command, args []string) error {
	input, err := buildDamageInput(rollNotation, rollCount, rollDie, rollModifier, rollDamageType)
	if err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	var result *damage.Result
	if rollCritical {
		output, err := svc.CalculateCriticalDamage(cmd.Context(), &damageorch.CalculateCriticalDamageInput{
			Input: input,
		})
		if err != nil {
			return err
		}
		result = output.Result
	} else {
		output, err := svc.CalculateDamage(cmd.Context(), &damageorch.CalculateDamageInput{
			Input: input,
		})
		if err != nil {
			return err
		}
		result = output.Result
	}

	if rollResistance != "" {
		output, err := svc.CalculateDamageWithResistance(cmd.Context(), &damageorch.CalculateDamageWithResistanceInput{
			BaseDamage:     result,
			ResistanceType: damage.ResistanceType(rollResistance),
		})
		if err != nil {
			return err
		}
		return printJSON(output.Result)
	}

	return printJSON(result)
}
