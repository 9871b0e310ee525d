package space

import "github.com/coolhome/coolhome/engine/world"

// OnFireTurnOn registers a fire lit while the observer is in a zone
func (sm *SpaceManager) OnFireTurnOn(fire world.Fire) {
	sm.RegisterFire(fire)
}

// OnFireTurnOff unregisters a fire
func (sm *SpaceManager) OnFireTurnOff(fire world.Fire) {
	if !sm.IsInitialized() {
		return
	}
	sm.UnregisterHeater(FireID(fire))
}

// OnItemIgnite registers a flare or torch lit, or a lamp turned on, inside a zone
func (sm *SpaceManager) OnItemIgnite(gi world.GearItem) {
	sm.TryRegisterGearItem(gi)
}

// OnItemExtinguish unregisters a gear item heater that burnt out or was put out
func (sm *SpaceManager) OnItemExtinguish(gi world.GearItem) {
	if !sm.IsInitialized() || gi == nil {
		return
	}
	sm.UnregisterHeater(GearItemID(gi))
}

func (sm *SpaceManager) OnItemThrow(gi world.GearItem) {
	sm.TryRegisterGearItem(gi)
}

func (sm *SpaceManager) OnItemDrop(gi world.GearItem) {
	sm.TryRegisterGearItem(gi)
}

// OnItemPickup unregisters a flare, torch or lamp taken back by the observer
func (sm *SpaceManager) OnItemPickup(gi world.GearItem) {
	if !sm.IsInitialized() || gi == nil || !isHeaterItem(gi) {
		return
	}
	sm.UnregisterHeater(GearItemID(gi))
}

// StartPlacement remembers the item the observer is placing
func (sm *SpaceManager) StartPlacement(gi world.GearItem) {
	if !sm.IsInitialized() {
		return
	}
	sm.objectToPlace = gi
}

// CancelPlacement forgets the item being placed
func (sm *SpaceManager) CancelPlacement() {
	sm.objectToPlace = nil
}

// CommitPlacement registers the placed item if it is an active heater
func (sm *SpaceManager) CommitPlacement() {
	if !sm.IsInitialized() || sm.objectToPlace == nil {
		return
	}
	sm.TryRegisterGearItem(sm.objectToPlace)
}

// ObjectToPlace returns the item being placed
func (sm *SpaceManager) ObjectToPlace() (world.GearItem, bool) {
	return sm.objectToPlace, sm.objectToPlace != nil
}
