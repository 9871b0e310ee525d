// Package world declares what the zone core needs to know about the simulated world.
//
// The host simulation implements these interfaces; nothing in here owns any state.
package world

// Fire is a placed fire (campfire, stove, barrel).
type Fire interface {
	// GUID returns the persistent identity of the fire, if one was ever assigned
	GUID() (string, bool)
	// AssignGUID attaches a persistent identity to the fire
	AssignGUID(guid string)
	Name() string
	Position() Vector3
	RemainingLifetimeSeconds() float64
	// TempIncrease is the current temperature increase in C
	TempIncrease() float64
	MaxTempIncrease() float64
}

// GearItem is an inventory item. Heat source gear carries exactly one of
// a flare, torch or lamp component.
type GearItem interface {
	InstanceID() int64
	Flare() (Flare, bool)
	Torch() (Torch, bool)
	Lamp() (Lamp, bool)
}

// Flare is the burning part of a flare gear item
type Flare interface {
	Gear() GearItem
	IsBurning() bool
	// NormalizedBurnTimeLeft is within [0, 1]
	NormalizedBurnTimeLeft() float64
	ModifiedBurnLifetimeMinutes() float64
}

// Torch is the burning part of a torch gear item
type Torch interface {
	Gear() GearItem
	IsBurning() bool
	// BurnProgress is within [0, 1], 1 when burnt out
	BurnProgress() float64
	ModifiedBurnLifetimeMinutes() float64
}

// Lamp is the fuel part of a lamp gear item
type Lamp interface {
	Gear() GearItem
	IsOn() bool
	CurrentFuelLiters() float64
	ModifiedFuelBurnLitersPerHour() float64
}

// IndoorTrigger marks an enclosed space inside an outdoor scene
type IndoorTrigger interface {
	GUID() string
}

// VehicleDoor is the door used to enter a vehicle cabin
type VehicleDoor interface {
	// ParentName is the name of the vehicle object, e.g. "Plane_Crashed_A"
	ParentName() string
	ParentPosition() Vector3
}

// World enumerates the heat sources and triggers present in the loaded scene
type World interface {
	Fires() []Fire
	Flares() []Flare
	Torches() []Torch
	Lamps() []Lamp
	IndoorTriggers() []IndoorTrigger
	// ItemInHands returns the gear item held by the observer, if any
	ItemInHands() (GearItem, bool)
}

// SameItem reports whether two gear items are the same instance
func SameItem(a, b GearItem) bool {
	return a != nil && b != nil && a.InstanceID() == b.InstanceID()
}
