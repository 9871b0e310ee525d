package event

import "github.com/coolhome/coolhome/engine/world"

// IndoorTriggerEnter fires when the observer walks into an indoor trigger volume
type IndoorTriggerEnter struct {
	Trigger world.IndoorTrigger
}

// IndoorTriggerExit fires when the observer walks out of an indoor trigger volume
type IndoorTriggerExit struct{}

// IndoorSceneEnter fires after an indoor scene finished loading
type IndoorSceneEnter struct {
	SceneName string
}

// IndoorSceneExit fires before an indoor scene unloads
type IndoorSceneExit struct{}

// OutdoorSceneEnter fires after an outdoor scene finished loading
type OutdoorSceneEnter struct{}

// OutdoorSceneExit fires before an outdoor scene unloads
type OutdoorSceneExit struct{}

// VehicleEnter fires when the observer enters a vehicle cabin
type VehicleEnter struct {
	Door world.VehicleDoor
}

// VehicleExit fires when the observer leaves a vehicle cabin
type VehicleExit struct{}

type FireTurnedOn struct {
	Fire world.Fire
}

type FireTurnedOff struct {
	Fire world.Fire
}

// ItemIgnited covers flares and torches being lit and lamps being turned on
type ItemIgnited struct {
	Item world.GearItem
}

// ItemExtinguished covers burning out, extinguishing and turning off
type ItemExtinguished struct {
	Item world.GearItem
}

type ItemThrown struct {
	Item world.GearItem
}

type ItemDropped struct {
	Item world.GearItem
}

type ItemPickedUp struct {
	Item world.GearItem
}

// PlacementStarted fires when the observer starts positioning an item
type PlacementStarted struct {
	Item world.GearItem
}

type PlacementCancelled struct{}

// PlacementCommitted fires when the positioned item is put down
type PlacementCommitted struct{}

// FireTick is emitted once per simulation tick for every live fire
type FireTick struct {
	Fire world.Fire
}

type FlareTick struct {
	Flare world.Flare
}

type TorchTick struct {
	Torch world.Torch
}

type LampTick struct {
	Lamp world.Lamp
}

// SaveRequested asks subscribers to persist their state
type SaveRequested struct{}

// LoadRequested asks subscribers to restore their state
type LoadRequested struct{}
