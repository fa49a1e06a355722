package placement_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
	"github.com/KirkDiggler/rpg-apparel/internal/errors"
	"github.com/KirkDiggler/rpg-apparel/internal/redis"
	"github.com/KirkDiggler/rpg-apparel/internal/repositories/placement"
	"github.com/KirkDiggler/rpg-apparel/internal/testutils"
)

const (
	testCharID       = "char_test123"
	testPlacementKey = "placement:character:char_test123"
)

type RedisPlacementTestSuite struct {
	suite.Suite
	client redis.Client
	mr     *miniredis.Miniredis
	repo   placement.Repository
	ctx    context.Context
	now    time.Time
}

func TestRedisPlacementSuite(t *testing.T) {
	suite.Run(t, new(RedisPlacementTestSuite))
}

func (s *RedisPlacementTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	repo, err := placement.NewRedis(&placement.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisPlacementTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *placement.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "success with valid config",
			config:  &placement.RedisConfig{Client: s.client},
			wantErr: false,
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &placement.RedisConfig{Client: nil},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := placement.NewRedis(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisPlacementTestSuite) TestUpdateThenGet() {
	p := apparel.NewPlacement()
	p.Equip(apparel.ImperialLightHelmet)
	p.Equip(apparel.StormcloakCuirass)
	p.Equip(apparel.Footwraps)

	updated, err := s.repo.Update(s.ctx, placement.UpdateInput{
		CharacterID: testCharID,
		Placement:   p,
		UpdatedAt:   s.now,
	})
	s.Require().NoError(err)
	s.Equal(testCharID, updated.CharacterID)
	s.Equal(p.Worn(), updated.Placement.Worn())

	s.True(s.mr.Exists(testPlacementKey))

	got, err := s.repo.Get(s.ctx, placement.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(testCharID, got.CharacterID)
	s.True(s.now.Equal(got.UpdatedAt))

	// Catalog handles come back as the same shared entries
	s.Same(apparel.ImperialLightHelmet, got.Placement.At(apparel.PositionHead))
	s.Same(apparel.StormcloakCuirass, got.Placement.At(apparel.PositionTorso))
	s.Nil(got.Placement.At(apparel.PositionHands))
	s.Same(apparel.Footwraps, got.Placement.At(apparel.PositionFeet))
}

func (s *RedisPlacementTestSuite) TestUpdateEmptyPlacement() {
	_, err := s.repo.Update(s.ctx, placement.UpdateInput{
		CharacterID: testCharID,
		Placement:   apparel.NewPlacement(),
		UpdatedAt:   s.now,
	})
	s.Require().NoError(err)

	raw, err := s.mr.Get(testPlacementKey)
	s.Require().NoError(err)
	s.NotContains(raw, "slots")

	got, err := s.repo.Get(s.ctx, placement.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.True(got.Placement.IsEmpty())
}

func (s *RedisPlacementTestSuite) TestGetErrors() {
	testCases := []struct {
		name     string
		input    placement.GetInput
		stored   string
		wantCode errors.Code
		errMsg   string
	}{
		{
			name:     "empty character ID",
			input:    placement.GetInput{CharacterID: ""},
			wantCode: errors.CodeInvalidArgument,
			errMsg:   "character ID cannot be empty",
		},
		{
			name:     "nothing stored",
			input:    placement.GetInput{CharacterID: testCharID},
			wantCode: errors.CodeNotFound,
			errMsg:   "not found",
		},
		{
			name:     "corrupt json",
			input:    placement.GetInput{CharacterID: testCharID},
			stored:   "{not json",
			wantCode: errors.CodeInternal,
			errMsg:   "failed to unmarshal",
		},
		{
			name:     "unknown item",
			input:    placement.GetInput{CharacterID: testCharID},
			stored:   `{"character_id":"char_test123","slots":{"head":"daedric_helmet"}}`,
			wantCode: errors.CodeDataLoss,
			errMsg:   "unknown item",
		},
		{
			name:     "unknown slot",
			input:    placement.GetInput{CharacterID: testCharID},
			stored:   `{"character_id":"char_test123","slots":{"tail":"footwraps"}}`,
			wantCode: errors.CodeDataLoss,
			errMsg:   "unknown slot",
		},
		{
			name:     "item in the wrong slot",
			input:    placement.GetInput{CharacterID: testCharID},
			stored:   `{"character_id":"char_test123","slots":{"head":"footwraps"}}`,
			wantCode: errors.CodeDataLoss,
			errMsg:   "worn on feet",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mr.FlushAll()
			if tc.stored != "" {
				s.Require().NoError(s.mr.Set(testPlacementKey, tc.stored))
			}

			out, err := s.repo.Get(s.ctx, tc.input)

			s.Error(err)
			s.Nil(out)
			s.Equal(tc.wantCode, errors.GetCode(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisPlacementTestSuite) TestUpdateValidation() {
	_, err := s.repo.Update(s.ctx, placement.UpdateInput{Placement: apparel.NewPlacement()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, placement.UpdateInput{CharacterID: testCharID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisPlacementTestSuite) TestDelete() {
	_, err := s.repo.Update(s.ctx, placement.UpdateInput{
		CharacterID: testCharID,
		Placement:   apparel.NewPlacement(),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, placement.DeleteInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.False(s.mr.Exists(testPlacementKey))

	_, err = s.repo.Delete(s.ctx, placement.DeleteInput{CharacterID: testCharID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, placement.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisPlacementTestSuite) TestStorageFailure() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, placement.GetInput{CharacterID: testCharID})
	s.True(errors.IsInternal(err))
}

func (s *RedisPlacementTestSuite) TestGetKey() {
	s.Equal(testPlacementKey, placement.GetKey(testCharID))
}
