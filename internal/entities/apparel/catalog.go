package apparel

// Catalog IDs
const (
	IDFootwraps            = "footwraps"
	IDRoughspunTunic       = "roughspun_tunic"
	IDStormcloakCuirass    = "stormcloak_cuirass"
	IDImperialLightArmor   = "imperial_light_armor"
	IDImperialLightBoots   = "imperial_light_boots"
	IDImperialLightBracers = "imperial_light_bracers"
	IDImperialLightHelmet  = "imperial_light_helmet"
)

// Generic
var (
	Footwraps = &Clothing{
		id:       IDFootwraps,
		name:     "Footwraps",
		position: PositionFeet,
		weight:   1,
		value:    1,
	}

	RoughspunTunic = &Clothing{
		id:       IDRoughspunTunic,
		name:     "Roughspun Tunic",
		position: PositionTorso,
		weight:   1,
		value:    1,
	}
)

// Stormcloak
var (
	StormcloakCuirass = &Armor{
		id:        IDStormcloakCuirass,
		name:      "Stormcloak Cuirass",
		position:  PositionTorso,
		baseArmor: 23,
		weight:    8,
		value:     25,
	}
)

// Imperial
var (
	ImperialLightArmor = &Armor{
		id:        IDImperialLightArmor,
		name:      "Imperial Light Armor",
		position:  PositionTorso,
		baseArmor: 23,
		weight:    6,
		value:     75,
	}

	ImperialLightBoots = &Armor{
		id:        IDImperialLightBoots,
		name:      "Imperial Light Boots",
		position:  PositionFeet,
		baseArmor: 7,
		weight:    2,
		value:     15,
	}

	ImperialLightBracers = &Armor{
		id:        IDImperialLightBracers,
		name:      "Imperial Light Bracers",
		position:  PositionHands,
		baseArmor: 7,
		weight:    1,
		value:     15,
	}

	ImperialLightHelmet = &Armor{
		id:        IDImperialLightHelmet,
		name:      "Imperial Light Helmet",
		position:  PositionHead,
		baseArmor: 12,
		weight:    2,
		value:     35,
	}
)

var catalog = []Apparel{
	Footwraps,
	RoughspunTunic,
	StormcloakCuirass,
	ImperialLightArmor,
	ImperialLightBoots,
	ImperialLightBracers,
	ImperialLightHelmet,
}

var catalogByID = func() map[string]Apparel {
	m := make(map[string]Apparel, len(catalog))
	for _, a := range catalog {
		m[a.GetID()] = a
	}
	return m
}()

// Catalog returns every catalog entry in declaration order
func Catalog() []Apparel {
	out := make([]Apparel, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry with the given ID
func Lookup(id string) (Apparel, bool) {
	a, ok := catalogByID[id]
	return a, ok
}
