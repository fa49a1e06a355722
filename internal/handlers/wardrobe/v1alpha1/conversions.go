package v1alpha1

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
)

// Request and response field names
const (
	FieldCharacterID = "character_id"
	FieldItemID      = "item_id"
	FieldPosition    = "position"
	FieldKind        = "kind"
	FieldPlacement   = "placement"
	FieldEquipped    = "equipped"
	FieldDisplaced   = "displaced"
	FieldItems       = "items"
	FieldUpdatedAt   = "updated_at"
)

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// convertItemToMap flattens an apparel item for a Struct response.
// Numbers become float64 on the wire, as Struct requires.
func convertItemToMap(a apparel.Apparel) map[string]any {
	intrinsic := a.Intrinsic()
	m := map[string]any{
		"id":       a.GetID(),
		"name":     a.Name(),
		"kind":     string(intrinsic.Kind),
		"position": a.Position().String(),
		"weight":   int(a.Weight()),
		"value":    int(a.Value()),
	}
	if armor, ok := intrinsic.Armor(); ok {
		m["base_armor"] = int(armor.Armor())
	}
	return m
}

func convertItemsToList(items []apparel.Apparel) []any {
	out := make([]any, len(items))
	for i, a := range items {
		out[i] = convertItemToMap(a)
	}
	return out
}

// convertPlacementToMap keys occupied slots by position name
func convertPlacementToMap(p *apparel.Placement) map[string]any {
	m := make(map[string]any)
	if p == nil {
		return m
	}
	for _, a := range p.Worn() {
		m[a.Position().String()] = convertItemToMap(a)
	}
	return m
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
