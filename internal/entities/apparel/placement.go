package apparel

// Placement tracks the garment worn in each body position.
// Invariant: each slot holds at most one garment, and that garment's
// Position matches the slot.
//
// Results of Equip and Dequip use a nil slice for "nothing displaced";
// a non-nil result always holds at least one garment.
type Placement struct {
	head  Apparel
	torso Apparel
	hands Apparel
	feet  Apparel
}

// NewPlacement returns a placement with every slot empty
func NewPlacement() *Placement {
	return &Placement{}
}

func (p *Placement) slot(pos Position) *Apparel {
	switch pos {
	case PositionHead:
		return &p.head
	case PositionTorso:
		return &p.torso
	case PositionHands:
		return &p.hands
	case PositionFeet:
		return &p.feet
	default:
		return nil
	}
}

// Dequip clears the slot at pos and returns its former occupant.
// Returns nil when the slot was already empty.
func (p *Placement) Dequip(pos Position) []Apparel {
	s := p.slot(pos)
	if s == nil || *s == nil {
		return nil
	}

	garment := *s
	*s = nil
	return []Apparel{garment}
}

// Equip puts garment into the slot named by its own position and returns
// whatever it displaced. Re-equipping the current occupant changes nothing
// and displaces nothing.
func (p *Placement) Equip(garment Apparel) []Apparel {
	if garment == nil {
		return nil
	}

	s := p.slot(garment.Position())
	if s == nil {
		return nil
	}

	other := *s
	*s = garment

	if other == nil || other.GetID() == garment.GetID() {
		return nil
	}
	return []Apparel{other}
}

// At returns the garment worn at pos, or nil
func (p *Placement) At(pos Position) Apparel {
	s := p.slot(pos)
	if s == nil {
		return nil
	}
	return *s
}

// Worn returns the occupied slots' garments in slot order
func (p *Placement) Worn() []Apparel {
	var worn []Apparel
	for _, pos := range AllPositions() {
		if a := p.At(pos); a != nil {
			worn = append(worn, a)
		}
	}
	return worn
}

// IsEmpty reports whether nothing is worn
func (p *Placement) IsEmpty() bool {
	return p.head == nil && p.torso == nil && p.hands == nil && p.feet == nil
}

// Clone returns an independent copy sharing the same catalog entries
func (p *Placement) Clone() *Placement {
	c := *p
	return &c
}
