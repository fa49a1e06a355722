package wardrobe

import (
	"time"

	"github.com/KirkDiggler/rpg-apparel/internal/entities/apparel"
)

// GetPlacementInput defines the request for reading what a character wears
type GetPlacementInput struct {
	CharacterID string
}

// GetPlacementOutput defines the response for reading what a character wears
type GetPlacementOutput struct {
	CharacterID string
	Placement   *apparel.Placement
	UpdatedAt   time.Time // zero if nothing has been stored yet
}

// EquipInput defines the request for equipping a catalog item
type EquipInput struct {
	CharacterID string
	ItemID      string
}

// EquipOutput defines the response for equipping a catalog item
type EquipOutput struct {
	Placement *apparel.Placement
	Equipped  apparel.Apparel
	Displaced []apparel.Apparel // nil when the slot was empty
}

// DequipInput defines the request for clearing a slot
type DequipInput struct {
	CharacterID string
	Position    apparel.Position
}

// DequipOutput defines the response for clearing a slot
type DequipOutput struct {
	Placement *apparel.Placement
	Displaced []apparel.Apparel // nil when the slot was already empty
}

// ListCatalogInput filters the catalog. Empty fields match everything.
type ListCatalogInput struct {
	Position apparel.Position
	Kind     apparel.Kind
}

// ListCatalogOutput defines the response for listing the catalog
type ListCatalogOutput struct {
	Items []apparel.Apparel
}
