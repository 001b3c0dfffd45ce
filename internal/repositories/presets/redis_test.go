package presets_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-damage/internal/redis"
	"github.com/KirkDiggler/rpg-damage/internal/repositories/presets"
	"github.com/KirkDiggler/rpg-damage/internal/testutils"
)

const (
	testNameIndexKey = "preset:names"
	testWeaponTagKey = "preset:tag:weapon"
	testSpellTagKey  = "preset:tag:spell"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    presets.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := presets.NewRedis(&presets.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) seedCatalog() {
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

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	s.Run("nil config", func() {
		_, err := presets.NewRedis(nil)
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidInput(err))
	})

	s.Run("nil client", func() {
		_, err := presets.NewRedis(&presets.RedisConfig{})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidInput(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGetByName() {
	s.seedCatalog()

	s.Run("existing preset", func() {
		output, err := s.repo.GetByName(s.ctx, presets.GetByNameInput{Name: "fireball"})
		s.Require().NoError(err)
		s.Assert().Equal("fireball", output.Preset.Name)
		s.Assert().Equal(8, output.Preset.DiceCount)
		s.Assert().Equal(damage.DieD6, output.Preset.DieType)
		s.Assert().Equal(damage.DamageTypeFire, output.Preset.DamageType)
		s.Assert().Equal([]string{"spell", "aoe"}, output.Preset.Tags)
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

func (s *RedisRepositoryTestSuite) TestStorageFormat() {
	s.seedCatalog()

	raw, err := s.client.Get(s.ctx, presets.GetKey("longsword")).Result()
	s.Require().NoError(err)

	var stored map[string]interface{}
	s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
	s.Assert().Equal("longsword", stored["name"])
	s.Assert().Equal(float64(1), stored["dice_count"])
	s.Assert().Equal("d8", stored["die_type"])
	s.Assert().Equal("slashing", stored["damage_type"])
}

func (s *RedisRepositoryTestSuite) TestIndexes() {
	s.seedCatalog()

	names, err := s.client.SMembers(s.ctx, testNameIndexKey).Result()
	s.Require().NoError(err)
	s.Assert().ElementsMatch([]string{"longsword", "fireball", "dagger"}, names)

	weapons, err := s.client.SMembers(s.ctx, testWeaponTagKey).Result()
	s.Require().NoError(err)
	s.Assert().ElementsMatch([]string{"longsword", "dagger"}, weapons)
}

func (s *RedisRepositoryTestSuite) TestList() {
	s.seedCatalog()

	output, err := s.repo.List(s.ctx, presets.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Presets, 3)

	// Listings are sorted by name
	s.Assert().Equal("dagger", output.Presets[0].Name)
	s.Assert().Equal("fireball", output.Presets[1].Name)
	s.Assert().Equal("longsword", output.Presets[2].Name)
}

func (s *RedisRepositoryTestSuite) TestListCleansStaleIndex() {
	s.seedCatalog()

	// Index entry without a data key simulates a partially deleted preset
	s.Require().NoError(s.client.SAdd(s.ctx, testNameIndexKey, "ghost").Err())

	output, err := s.repo.List(s.ctx, presets.ListInput{})
	s.Require().NoError(err)
	s.Assert().Len(output.Presets, 3)

	names, err := s.client.SMembers(s.ctx, testNameIndexKey).Result()
	s.Require().NoError(err)
	s.Assert().NotContains(names, "ghost")
}

func (s *RedisRepositoryTestSuite) TestListByTag() {
	s.seedCatalog()

	s.Run("weapon tag", func() {
		output, err := s.repo.ListByTag(s.ctx, presets.ListByTagInput{Tag: "weapon"})
		s.Require().NoError(err)
		s.Require().Len(output.Presets, 2)
		s.Assert().Equal("dagger", output.Presets[0].Name)
		s.Assert().Equal("longsword", output.Presets[1].Name)
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

func (s *RedisRepositoryTestSuite) TestSaveReplacesTagIndexes() {
	_, err := s.repo.Save(s.ctx, presets.SaveInput{
		Preset: &damage.Preset{
			Name:       "flamestrike",
			DiceCount:  4,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeFire,
			Tags:       []string{"weapon"},
		},
	})
	s.Require().NoError(err)

	// Re-save with different tags prunes the stale index entry
	_, err = s.repo.Save(s.ctx, presets.SaveInput{
		Preset: &damage.Preset{
			Name:       "flamestrike",
			DiceCount:  4,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeFire,
			Tags:       []string{"spell"},
		},
	})
	s.Require().NoError(err)

	weapons, err := s.client.SMembers(s.ctx, testWeaponTagKey).Result()
	s.Require().NoError(err)
	s.Assert().NotContains(weapons, "flamestrike")

	spells, err := s.client.SMembers(s.ctx, testSpellTagKey).Result()
	s.Require().NoError(err)
	s.Assert().Contains(spells, "flamestrike")
}

func (s *RedisRepositoryTestSuite) TestSaveInvalid() {
	_, err := s.repo.Save(s.ctx, presets.SaveInput{
		Preset: &damage.Preset{
			Name:       "bad",
			DiceCount:  101,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeFire,
		},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidInput(err))
}

func (s *RedisRepositoryTestSuite) TestSeedInvalid() {
	_, err := s.repo.Seed(s.ctx, presets.SeedInput{
		Presets: []*damage.Preset{
			{Name: "broken", DiceCount: 1, DieType: "d7", DamageType: damage.DamageTypeFire},
		},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidInput(err))
	s.Assert().Contains(errors.GetMessage(err), "broken")
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
