// Package apparel defines wearable items and the slot manager that tracks
// what a character is currently wearing.
package apparel

import "github.com/KirkDiggler/rpg-toolkit/core"

// Item is anything that can be carried
type Item interface {
	Name() string
	Weight() uint16
	Value() uint16
	Intrinsic() Intrinsic
}

// Apparel is an item worn in exactly one body position.
// The set of implementations is closed: *Clothing and *Armor.
type Apparel interface {
	Item
	core.Entity
	Position() Position
	apparel()
}

// Kind identifies the concrete variant behind an Item
type Kind string

// Item kinds
const (
	KindClothing Kind = "clothing"
	KindArmor    Kind = "armor"
)

// Intrinsic tags an item with its concrete variant so callers can reach
// variant-specific data without a type switch
type Intrinsic struct {
	Kind     Kind
	clothing *Clothing
	armor    *Armor
}

// Clothing returns the clothing record if the item is clothing
func (i Intrinsic) Clothing() (*Clothing, bool) {
	return i.clothing, i.clothing != nil
}

// Armor returns the armor record if the item is armor
func (i Intrinsic) Armor() (*Armor, bool) {
	return i.armor, i.armor != nil
}

// Clothing is apparel with no combat stat
type Clothing struct {
	id       string
	name     string
	position Position
	weight   uint16
	value    uint16
}

// Compile-time checks that both variants are apparel
var (
	_ Apparel = (*Clothing)(nil)
	_ Apparel = (*Armor)(nil)
)

// GetID returns the catalog ID
func (c *Clothing) GetID() string { return c.id }

// GetType returns the entity type for rpg-toolkit
func (c *Clothing) GetType() string { return string(KindClothing) }

func (c *Clothing) Name() string       { return c.name }
func (c *Clothing) Weight() uint16     { return c.weight }
func (c *Clothing) Value() uint16      { return c.value }
func (c *Clothing) Position() Position { return c.position }
func (c *Clothing) String() string     { return c.name }

// Intrinsic tags the item as clothing
func (c *Clothing) Intrinsic() Intrinsic {
	return Intrinsic{Kind: KindClothing, clothing: c}
}

func (c *Clothing) apparel() {}

// Armor is apparel with a base armor rating
type Armor struct {
	id        string
	name      string
	position  Position
	baseArmor uint16
	weight    uint16
	value     uint16
}

// GetID returns the catalog ID
func (a *Armor) GetID() string { return a.id }

// GetType returns the entity type for rpg-toolkit
func (a *Armor) GetType() string { return string(KindArmor) }

func (a *Armor) Name() string       { return a.name }
func (a *Armor) Weight() uint16     { return a.weight }
func (a *Armor) Value() uint16      { return a.value }
func (a *Armor) Position() Position { return a.position }
func (a *Armor) String() string     { return a.name }

// Armor returns the base armor rating
func (a *Armor) Armor() uint16 { return a.baseArmor }

// Intrinsic tags the item as armor
func (a *Armor) Intrinsic() Intrinsic {
	return Intrinsic{Kind: KindArmor, armor: a}
}

func (a *Armor) apparel() {}
