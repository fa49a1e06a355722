package placement

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
	"github.com/KirkDiggler/rpg-apparel/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-apparel/internal/redis"
)

const (
	placementKeyPrefix = "placement:character:"

	// Error messages
	errCharacterIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis placement repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed placement repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// placementData is what gets serialized to Redis.
// Slots maps a position to the catalog ID worn there.
type placementData struct {
	CharacterID string            `json:"character_id"`
	Slots       map[string]string `json:"slots,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func toData(characterID string, p *apparel.Placement, updatedAt time.Time) placementData {
	data := placementData{
		CharacterID: characterID,
		UpdatedAt:   updatedAt,
	}
	for _, garment := range p.Worn() {
		if data.Slots == nil {
			data.Slots = make(map[string]string)
		}
		data.Slots[garment.Position().String()] = garment.GetID()
	}
	return data
}

func fromData(data placementData) (*apparel.Placement, error) {
	p := apparel.NewPlacement()
	for slot, id := range data.Slots {
		pos, ok := apparel.PositionFromString(slot)
		if !ok {
			return nil, errors.DataLossf("stored placement has unknown slot %q", slot).
				WithMeta("character_id", data.CharacterID)
		}

		garment, ok := apparel.Lookup(id)
		if !ok {
			return nil, errors.DataLossf("stored placement references unknown item %q", id).
				WithMeta("character_id", data.CharacterID)
		}
		if garment.Position() != pos {
			return nil, errors.DataLossf("item %q stored in slot %s but is worn on %s", id, pos, garment.Position()).
				WithMeta("character_id", data.CharacterID)
		}

		p.Equip(garment)
	}
	return p, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := GetKey(input.CharacterID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("placement for character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get placement for character %s", input.CharacterID)
	}

	var data placementData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal placement data")
	}

	p, err := fromData(data)
	if err != nil {
		slog.ErrorContext(ctx, "stored placement does not match catalog",
			"character_id", input.CharacterID,
			"error", err)
		return nil, err
	}

	return &GetOutput{
		CharacterID: data.CharacterID,
		Placement:   p,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Placement == nil {
		return nil, errors.InvalidArgument("placement cannot be nil")
	}

	jsonData, err := json.Marshal(toData(input.CharacterID, input.Placement, input.UpdatedAt))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal placement data")
	}

	if err := r.client.Set(ctx, GetKey(input.CharacterID), jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update placement for character %s", input.CharacterID)
	}

	slog.DebugContext(ctx, "placement stored",
		"character_id", input.CharacterID,
		"worn", len(input.Placement.Worn()))

	return &UpdateOutput{
		CharacterID: input.CharacterID,
		Placement:   input.Placement.Clone(),
		UpdatedAt:   input.UpdatedAt,
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	deleted, err := r.client.Del(ctx, GetKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete placement for character %s", input.CharacterID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("placement for character %s not found", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a character's placement
func GetKey(characterID string) string {
	return placementKeyPrefix + characterID
}
