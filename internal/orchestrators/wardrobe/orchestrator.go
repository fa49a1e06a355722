// Package wardrobe implements the orchestrator that turns equip and dequip
// commands into stored slot changes for a character
package wardrobe

//go:generate mockgen -destination=mock/mock_service.go -package=wardrobemock github.com/KirkDiggler/rpg-apparel/internal/orchestrators/wardrobe Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
	"github.com/KirkDiggler/rpg-apparel/internal/errors"
	"github.com/KirkDiggler/rpg-apparel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-apparel/internal/repositories/placement"
)

// Service defines the interface for wardrobe operations
type Service interface {
	GetPlacement(ctx context.Context, input *GetPlacementInput) (*GetPlacementOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Dequip(ctx context.Context, input *DequipInput) (*DequipOutput, error)
	ListCatalog(ctx context.Context, input *ListCatalogInput) (*ListCatalogOutput, error)
}

// Config holds the dependencies for the wardrobe orchestrator
type Config struct {
	PlacementRepo placement.Repository
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.PlacementRepo == nil {
		vb.RequiredField("PlacementRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	placementRepo placement.Repository
	clock         clock.Clock
}

// NewOrchestrator creates a new wardrobe orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		placementRepo: cfg.PlacementRepo,
		clock:         cfg.Clock,
	}, nil
}

// load returns the stored placement, or an empty one for a character that
// has never equipped anything
func (o *orchestrator) load(ctx context.Context, characterID string) (*placement.GetOutput, error) {
	out, err := o.placementRepo.Get(ctx, placement.GetInput{CharacterID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &placement.GetOutput{
				CharacterID: characterID,
				Placement:   apparel.NewPlacement(),
			}, nil
		}
		return nil, errors.Wrapf(err, "failed to load placement for character %s", characterID)
	}
	return out, nil
}

func (o *orchestrator) save(ctx context.Context, characterID string, p *apparel.Placement) error {
	_, err := o.placementRepo.Update(ctx, placement.UpdateInput{
		CharacterID: characterID,
		Placement:   p,
		UpdatedAt:   o.clock.Now(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to save placement for character %s", characterID)
	}
	return nil
}

func (o *orchestrator) GetPlacement(ctx context.Context, input *GetPlacementInput) (*GetPlacementOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetPlacementOutput{
		CharacterID: input.CharacterID,
		Placement:   out.Placement,
		UpdatedAt:   out.UpdatedAt,
	}, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterID", input.CharacterID, vb)
	errors.ValidateRequired("ItemID", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	garment, ok := apparel.Lookup(input.ItemID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown item %q", input.ItemID).
			WithMeta("item_id", input.ItemID)
	}

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	p := current.Placement
	displaced := p.Equip(garment)

	if err := o.save(ctx, input.CharacterID, p); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Apparel equipped",
		"character_id", input.CharacterID,
		"item_id", garment.GetID(),
		"position", garment.Position().String(),
		"displaced", len(displaced))

	return &EquipOutput{
		Placement: p,
		Equipped:  garment,
		Displaced: displaced,
	}, nil
}

func (o *orchestrator) Dequip(ctx context.Context, input *DequipInput) (*DequipOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if !input.Position.IsValid() {
		return nil, errors.InvalidArgumentf("invalid position %q", input.Position).
			WithMeta("position", input.Position.String())
	}

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	p := current.Placement
	displaced := p.Dequip(input.Position)
	if displaced == nil {
		// Nothing was worn there, no need to write
		return &DequipOutput{Placement: p}, nil
	}

	if err := o.save(ctx, input.CharacterID, p); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Apparel removed",
		"character_id", input.CharacterID,
		"position", input.Position.String(),
		"item_id", displaced[0].GetID())

	return &DequipOutput{
		Placement: p,
		Displaced: displaced,
	}, nil
}

func (o *orchestrator) ListCatalog(_ context.Context, input *ListCatalogInput) (*ListCatalogOutput, error) {
	if input == nil {
		input = &ListCatalogInput{}
	}
	if input.Position != "" && !input.Position.IsValid() {
		return nil, errors.InvalidArgumentf("invalid position %q", input.Position)
	}

	var items []apparel.Apparel
	for _, a := range apparel.Catalog() {
		if input.Position != "" && a.Position() != input.Position {
			continue
		}
		if input.Kind != "" && a.Intrinsic().Kind != input.Kind {
			continue
		}
		items = append(items, a)
	}

	return &ListCatalogOutput{Items: items}, nil
}
