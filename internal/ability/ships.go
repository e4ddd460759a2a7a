package ability

import "strings"

// Ship is a selectable player ship: its hull and its three ability slots.
type Ship struct {
	ID        string
	Name      string
	Width     float64
	Height    float64
	Speed     float64
	Color     string
	Abilities [3]Kind
}

// Ships lists every playable ship in menu order. Slots 1 and 2 are shared.
var Ships = []Ship{
	{ID: "vanguard", Name: "Vanguard", Width: 40, Height: 60, Speed: 5, Color: "#4fc3f7", Abilities: [3]Kind{Beam, ConeBurst, Nova}},
	{ID: "striker", Name: "Striker", Width: 36, Height: 54, Speed: 6, Color: "#ff8a65", Abilities: [3]Kind{Beam, ConeBurst, MissileStrike}},
	{ID: "titan", Name: "Titan", Width: 48, Height: 66, Speed: 4, Color: "#ffd54f", Abilities: [3]Kind{Beam, ConeBurst, Overcharge}},
	{ID: "warden", Name: "Warden", Width: 44, Height: 62, Speed: 4.5, Color: "#81c784", Abilities: [3]Kind{Beam, ConeBurst, Aegis}},
	{ID: "tempest", Name: "Tempest", Width: 38, Height: 56, Speed: 5.5, Color: "#ba68c8", Abilities: [3]Kind{Beam, ConeBurst, Wavefront}},
	{ID: "hive", Name: "Hive", Width: 42, Height: 60, Speed: 5, Color: "#a1887f", Abilities: [3]Kind{Beam, ConeBurst, DroneSquad}},
}

// DefaultShip is used when no ship or an unknown ship is requested.
const DefaultShip = "vanguard"

// ShipByID looks a ship up by id, case-insensitively.
func ShipByID(id string) (Ship, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range Ships {
		if s.ID == id {
			return s, true
		}
	}
	return Ship{}, false
}

// ShipOrDefault returns the named ship or the default one.
func ShipOrDefault(id string) Ship {
	if s, ok := ShipByID(id); ok {
		return s
	}
	s, _ := ShipByID(DefaultShip)
	return s
}

// Set creates fresh abilities for the ship's three slots.
func (s Ship) Set() [3]*Ability {
	return [3]*Ability{New(s.Abilities[0]), New(s.Abilities[1]), New(s.Abilities[2])}
}
