package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	damageorch "github.com/KirkDiggler/rpg-damage/internal/orchestrators/damage"
)

var (
	distributeNotation   string
	distributeDamageType string
	distributeMethod     string
	distributeTargets    []string
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Roll damage once and distribute it across targets",
	Long: `Rolls the specification once, then applies the result to every target
with its own resistance. Targets are given as id:name:resistance, e.g.
--target goblin-1:Goblin:normal --target troll-1:Troll:resistant.`,
	RunE: runDistribute,
}

func init() {
	distributeCmd.Flags().StringVar(&distributeNotation, "dice", "", "dice notation, e.g. 8d6")
	distributeCmd.Flags().StringVar(&distributeDamageType, "type", "fire", "damage type tag")
	distributeCmd.Flags().StringVar(&distributeMethod, "method", string(damage.DistributionEqual),
		"distribution method (equal, split)")
	distributeCmd.Flags().StringArrayVar(&distributeTargets, "target", nil,
		"target as id:name:resistance (repeatable)")
	_ = distributeCmd.MarkFlagRequired("dice")
}

func runDistribute(cmd *cobra.Command, args []string) error {
	input, err := buildDamageInput(distributeNotation, 0, "", 0, distributeDamageType)
	if err != nil {
		return err
	}

	targets, err := parseTargets(distributeTargets)
	if err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	rollOutput, err := svc.CalculateDamage(cmd.Context(), &damageorch.CalculateDamageInput{
		Input: input,
	})
	if err != nil {
		return err
	}

	output, err := svc.DistributeDamage(cmd.Context(), &damageorch.DistributeDamageInput{
		BaseDamage: rollOutput.Result,
		Targets:    targets,
		Method:     damage.DistributionMethod(distributeMethod),
	})
	if err != nil {
		return err
	}

	return printJSON(struct {
		Base    *damage.Result            `json:"base"`
		Method  damage.DistributionMethod `json:"method"`
		Results []*damage.TargetResult    `json:"results"`
	}{
		Base:    rollOutput.Result,
		Method:  output.Method,
		Results: output.Results,
	})
}

func parseTargets(specs []string) ([]*damage.Target, error) {
	targets := make([]*damage.Target, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return nil, errors.InvalidInputf("invalid target %q: expected id:name:resistance", spec)
		}
		targets = append(targets, &damage.Target{
			ID:             parts[0],
			Name:           parts[1],
			ResistanceType: damage.ResistanceType(parts[2]),
		})
	}
	return targets, nil
}
