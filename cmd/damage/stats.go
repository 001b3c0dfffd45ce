package main

import (
	"github.com/spf13/cobra"

	damageorch "github.com/KirkDiggler/rpg-damage/internal/orchestrators/damage"
)

var (
	statsNotation   string
	statsCount      int
	statsDie        string
	statsModifier   int
	statsDamageType string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show damage statistics without rolling",
	Long: `Derives the minimum, maximum, and expected damage of a specification
without consuming any entropy.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsNotation, "dice", "", "dice notation, e.g. 2d6+3")
	statsCmd.Flags().IntVar(&statsCount, "count", 1, "number of dice")
	statsCmd.Flags().StringVar(&statsDie, "die", "d6", "die type (d4, d6, d8, d10, d12, d20, d100)")
	statsCmd.Flags().IntVar(&statsModifier, "modifier", 0, "flat modifier")
	statsCmd.Flags().StringVar(&statsDamageType, "type", "bludgeoning", "damage type tag")
}

func runStats(cmd *cobra.Command, args []string) error {
	input, err := buildDamageInput(statsNotation, statsCount, statsDie, statsModifier, statsDamageType)
	if err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	output, err := svc.GetDamageStatistics(cmd.Context(), &damageorch.GetDamageStatisticsInput{
		Input: input,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Statistics)
}
