// Package v1alpha1 exposes the wardrobe orchestrator as a gRPC service
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
	"github.com/KirkDiggler/rpg-apparel/internal/errors"
	"github.com/KirkDiggler/rpg-apparel/internal/orchestrators/wardrobe"
)

// HandlerConfig holds dependencies for the wardrobe handler
type HandlerConfig struct {
	WardrobeService wardrobe.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.WardrobeService == nil {
		return errors.InvalidArgument("wardrobe service is required")
	}
	return nil
}

// Handler implements WardrobeServiceServer
type Handler struct {
	wardrobeService wardrobe.Service
}

var _ WardrobeServiceServer = (*Handler)(nil)

// NewHandler creates a new wardrobe handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		wardrobeService: cfg.WardrobeService,
	}, nil
}

// respond builds the Struct response and converts errors for the wire
func respond(ctx context.Context, fields map[string]any, err error) (*structpb.Struct, error) {
	if err != nil {
		if errors.IsInternal(err) || errors.IsDataLoss(err) {
			slog.ErrorContext(ctx, "wardrobe request failed", "error", err)
		}
		return nil, errors.ToGRPCError(err)
	}

	resp, err := structpb.NewStruct(fields)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build response", "error", err)
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return resp, nil
}

// GetPlacement returns what a character is wearing
func (h *Handler) GetPlacement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID := stringField(req, FieldCharacterID)
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.wardrobeService.GetPlacement(ctx, &wardrobe.GetPlacementInput{
		CharacterID: characterID,
	})
	if err != nil {
		return respond(ctx, nil, err)
	}

	fields := map[string]any{
		FieldCharacterID: out.CharacterID,
		FieldPlacement:   convertPlacementToMap(out.Placement),
	}
	if ts := formatTime(out.UpdatedAt); ts != "" {
		fields[FieldUpdatedAt] = ts
	}
	return respond(ctx, fields, nil)
}

// Equip puts a catalog item on a character. The displaced field is only
// present when something was bumped out of the slot.
func (h *Handler) Equip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID := stringField(req, FieldCharacterID)
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	itemID := stringField(req, FieldItemID)
	if itemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.wardrobeService.Equip(ctx, &wardrobe.EquipInput{
		CharacterID: characterID,
		ItemID:      itemID,
	})
	if err != nil {
		return respond(ctx, nil, err)
	}

	fields := map[string]any{
		FieldCharacterID: characterID,
		FieldPlacement:   convertPlacementToMap(out.Placement),
		FieldEquipped:    convertItemToMap(out.Equipped),
	}
	if out.Displaced != nil {
		fields[FieldDisplaced] = convertItemsToList(out.Displaced)
	}
	return respond(ctx, fields, nil)
}

// Dequip clears one slot on a character
func (h *Handler) Dequip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID := stringField(req, FieldCharacterID)
	if characterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	pos, ok := apparel.PositionFromString(stringField(req, FieldPosition))
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf(
			"position must be one of head, torso, hands, feet; got %q", stringField(req, FieldPosition)))
	}

	out, err := h.wardrobeService.Dequip(ctx, &wardrobe.DequipInput{
		CharacterID: characterID,
		Position:    pos,
	})
	if err != nil {
		return respond(ctx, nil, err)
	}

	fields := map[string]any{
		FieldCharacterID: characterID,
		FieldPlacement:   convertPlacementToMap(out.Placement),
	}
	if out.Displaced != nil {
		fields[FieldDisplaced] = convertItemsToList(out.Displaced)
	}
	return respond(ctx, fields, nil)
}

// ListCatalog lists catalog items, optionally filtered by position and kind
func (h *Handler) ListCatalog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.wardrobeService.ListCatalog(ctx, &wardrobe.ListCatalogInput{
		Position: apparel.Position(stringField(req, FieldPosition)),
		Kind:     apparel.Kind(stringField(req, FieldKind)),
	})
	if err != nil {
		return respond(ctx, nil, err)
	}

	return respond(ctx, map[string]any{
		FieldItems: convertItemsToList(out.Items),
	}, nil)
}
