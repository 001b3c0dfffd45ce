package presets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	"github.com/KirkDiggler/rpg-damage/internal/repositories/presets"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *presets.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = presets.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) seedCatalog() {
	_, err := s.repo.Seed(s.ctx, presets.SeedInput{
		Presets: []*damage.Preset{
			{
				Name:       "longsword",
				DiceCount:  1,
				DieType:    damage.DieD8,
				DamageType: damage.DamageTypeSlashing,
				Tags:       []string{"weapon", "melee"},
			},
			{
				Name:       "fireball",
				DiceCount:  8,
				DieType:    damage.DieD6,
				DamageType: damage.DamageTypeFire,
				Tags:       []string{"spell", "aoe"},
			},
			{
				Name:       "dagger",
				DiceCount:  1,
				DieType:    damage.DieD4,
				DamageType: damage.DamageTypePiercing,
				Tags:       []string{"weapon", "melee", "ranged"},
			},
		},
	})
	s.Require().NoError(err)
}

func (s *InMemoryRepositoryTestSuite) TestGetByName() {
	s.seedCatalog()

	s.Run("existing preset", func() {
		output, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "longsword"})
		s.Require().NoError(err)
		s.Assert().Equal("longsword", output.Preset.Name)
		s.Assert().Equal(1, output.Preset.DiceCount)
		s.Assert().Equal(damage.DieD8, output.Preset.DieType)
		s.Assert().Equal(damage.DamageTypeSlashing, output.Preset.DamageType)
	})

	s.Run("missing preset", func() {
		_, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "flamestrike"})
		s.Require().Error(err)
		s.Assert().True(errors.IsPresetNotFound(err))
	})

	s.Run("empty name", func() {
		_, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidInput(err))
	})
}

func (s *InMemoryRepositoryTestSuite) TestGetByNameReturnsCopy() {
	s.seedCatalog()

	first, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "dagger"})
	s.Require().NoError(err)

	// Mutating the returned preset must not leak into the store
	first.Preset.Modifier = 99
	first.Preset.Tags[0] = "mutated"

	second, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "dagger"})
	s.Require().NoError(err)
	s.Assert().Equal(0, second.Preset.Modifier)
	s.Assert().Equal("weapon", second.Preset.Tags[0])
}

func (s *InMemoryRepositoryTestSuite) TestList() {
	s.seedCatalog()

	output, err := s.repo.List(s.ctx, presets.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Presets, 3)

	// Listings are sorted by name
	s.Assert().Equal("dagger", output.Presets[0].Name)
	s.Assert().Equal("fireball", output.Presets[1].Name)
	s.Assert().Equal("longsword", output.Presets[2].Name)
}

func (s *InMemoryRepositoryTestSuite) TestListEmpty() {
	output, err := s.repo.List(s.ctx, presets.ListInput{})
	s.Require().NoError(err)
	s.Assert().Empty(output.Presets)
}

func (s *InMemoryRepositoryTestSuite) TestListByTag() {
	s.seedCatalog()

	s.Run("weapon tag", func() {
		output, err := s.repo.ListByTag(s.ctx, presets.ListByTagInput{Tag: "weapon"})
		s.Require().NoError(err)
		s.Require().Len(output.Presets, 2)
		s.Assert().Equal("dagger", output.Presets[0].Name)
		s.Assert().Equal("longsword", output.Presets[1].Name)
	})

	s.Run("aoe tag", func() {
		output, err := s.repo.ListByTag(s.ctx, presets.ListByTagInput{Tag: "aoe"})
		s.Require().NoError(err)
		s.Require().Len(output.Presets, 1)
		s.Assert().Equal("fireball", output.Presets[0].Name)
	})

	s.Run("unknown tag", func() {
		output, err := s.repo.ListByTag(s.ctx, presets.ListByTagInput{Tag: "exotic"})
		s.Require().NoError(err)
		s.Assert().Empty(output.Presets)
	})

	s.Run("empty tag", func() {
		_, err := s.repo.ListByTag(s.ctx, presets.ListByTagInput{})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidInput(err))
	})
}

func (s *InMemoryRepositoryTestSuite) TestSave() {
	preset := &damage.Preset{
		Name:       "flamestrike",
		DiceCount:  4,
		DieType:    damage.DieD6,
		Modifier:   2,
		DamageType: damage.DamageTypeFire,
		Tags:       []string{"spell"},
	}

	output, err := s.repo.Save(s.ctx, presets.SaveInput{Preset: preset})
	s.Require().NoError(err)
	s.Assert().Equal("flamestrike", output.Preset.Name)

	got, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "flamestrike"})
	s.Require().NoError(err)
	s.Assert().Equal(4, got.Preset.DiceCount)
	s.Assert().Equal(2, got.Preset.Modifier)
}

func (s *InMemoryRepositoryTestSuite) TestSaveReplacesExisting() {
	s.seedCatalog()

	_, err := s.repo.Save(s.ctx, presets.SaveInput{
		Preset: &damage.Preset{
			Name:       "longsword",
			DiceCount:  2,
			DieType:    damage.DieD8,
			DamageType: damage.DamageTypeSlashing,
			Tags:       []string{"weapon", "versatile"},
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "longsword"})
	s.Require().NoError(err)
	s.Assert().Equal(2, got.Preset.DiceCount)
	s.Assert().True(got.Preset.HasTag("versatile"))
}

func (s *InMemoryRepositoryTestSuite) TestSaveStoresCopy() {
	preset := &damage.Preset{
		Name:       "dagger",
		DiceCount:  1,
		DieType:    damage.DieD4,
		DamageType: damage.DamageTypePiercing,
	}

	_, err := s.repo.Save(s.ctx, presets.SaveInput{Preset: preset})
	s.Require().NoError(err)

	// Mutating the caller's preset must not leak into the store
	preset.DiceCount = 50

	got, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "dagger"})
	s.Require().NoError(err)
	s.Assert().Equal(1, got.Preset.DiceCount)
}

func (s *InMemoryRepositoryTestSuite) TestSaveInvalid() {
	testCases := []struct {
		name   string
		preset *damage.Preset
	}{
		{"nil preset", nil},
		{"empty name", &damage.Preset{
			DiceCount: 1, DieType: damage.DieD6, DamageType: damage.DamageTypeFire,
		}},
		{"unknown die type", &damage.Preset{
			Name: "bad", DiceCount: 1, DieType: "d7", DamageType: damage.DamageTypeFire,
		}},
		{"dice count over cap", &damage.Preset{
			Name: "bad", DiceCount: 101, DieType: damage.DieD6, DamageType: damage.DamageTypeFire,
		}},
		{"modifier out of range", &damage.Preset{
			Name: "bad", DiceCount: 1, DieType: damage.DieD6, Modifier: 1000, DamageType: damage.DamageTypeFire,
		}},
		{"empty damage type", &damage.Preset{
			Name: "bad", DiceCount: 1, DieType: damage.DieD6,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, presets.SaveInput{Preset: tc.preset})
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidInput(err))
		})
	}
}

func (s *InMemoryRepositoryTestSuite) TestSeedInvalid() {
	s.Run("nil entry", func() {
		_, err := s.repo.Seed(s.ctx, presets.SeedInput{
			Presets: []*damage.Preset{nil},
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidInput(err))
	})

	s.Run("invalid entry names the preset", func() {
		_, err := s.repo.Seed(s.ctx, presets.SeedInput{
			Presets: []*damage.Preset{
				{Name: "broken", DiceCount: 1, DieType: "d7", DamageType: damage.DamageTypeFire},
			},
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidInput(err))
		s.Assert().Contains(errors.GetMessage(err), "broken")
	})
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
