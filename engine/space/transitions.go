package space

import (
	"strings"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/world"
)

// IndoorSpaceName returns the zone name of an indoor trigger
func IndoorSpaceName(trigger world.IndoorTrigger) string {
	return trigger.GUID()
}

// VehicleSpaceName returns the zone name of a vehicle cabin. Vehicles never
// move, so their position identifies the cabin.
func VehicleSpaceName(door world.VehicleDoor) string {
	return door.ParentPosition().String()
}

// VehicleMeta returns the vehicle kind of a cabin
func VehicleMeta(door world.VehicleDoor) string {
	if strings.Contains(strings.ToLower(door.ParentName()), "plane") {
		return META_PLANE
	}
	return META_TRUCK
}

// EnterIndoor makes the trigger's zone current. A known zone is simulated
// live again, so its shadow heaters are removed.
func (sm *SpaceManager) EnterIndoor(trigger world.IndoorTrigger) {
	sm.EnterIndoorScene(IndoorSpaceName(trigger))
}

// EnterIndoorSpace makes the trigger's zone current, keeping its shadow heaters
func (sm *SpaceManager) EnterIndoorSpace(trigger world.IndoorTrigger) {
	if !sm.IsInitialized() {
		return
	}
	name := IndoorSpaceName(trigger)
	sm.setCurrentSpace(name)
	chlog.Infof("Entering space named %s", name)
}

// EnterIndoorScene makes the zone of an indoor scene current and removes its shadow heaters
func (sm *SpaceManager) EnterIndoorScene(sceneName string) {
	if !sm.IsInitialized() {
		return
	}
	sm.setCurrentSpace(sceneName)
	if zone, ok := sm.zones.Get(sceneName); ok {
		zone.thermal.RemoveShadowHeaters()
	}
	if consts.DEBUG_SPACES {
		chlog.Debugf("EnterIndoorScene %s", sceneName)
	}
}

// LeaveIndoor turns every qualifying heat source present in the world into a
// shadow heater of the current zone, then leaves the zone.
//
// A heat source qualifies when it burns, is not in the observer's hands and
// has at least min_shadow_seconds left.
func (sm *SpaceManager) LeaveIndoor() {
	if !sm.IsInitialized() || !sm.hasCurrent {
		return
	}
	defer sm.clearCurrentSpace()

	zone, ok := sm.GetCurrentSpace()
	if !ok {
		if consts.DEBUG_SPACES {
			chlog.Debugf("LeaveIndoor %s: zone not tracked", sm.currentSpace)
		}
		return
	}

	inHands, _ := sm.world.ItemInHands()
	n := 0
	for _, fire := range sm.world.Fires() {
		if sh, ok := sm.fireShadow(fire); ok {
			sm.addShadow(zone, sh)
			n++
		}
	}
	for _, flare := range sm.world.Flares() {
		if sh, ok := sm.flareShadow(flare, inHands); ok {
			sm.addShadow(zone, sh)
			n++
		}
	}
	for _, torch := range sm.world.Torches() {
		if sh, ok := sm.torchShadow(torch, inHands); ok {
			sm.addShadow(zone, sh)
			n++
		}
	}
	for _, lamp := range sm.world.Lamps() {
		if sh, ok := sm.lampShadow(lamp, inHands); ok {
			sm.addShadow(zone, sh)
			n++
		}
	}
	chlog.Infof("Leaving %s with %d shadow heaters", zone, n)
}

// Leave leaves the current zone without converting any heat source
func (sm *SpaceManager) Leave() {
	if !sm.IsInitialized() {
		return
	}
	sm.clearCurrentSpace()
	sm.currentMeta = ""
}

// presentTriggerZones returns the known zones of indoor triggers present in the world
func (sm *SpaceManager) presentTriggerZones() map[string]*Zone {
	zones := map[string]*Zone{}
	for _, trigger := range sm.world.IndoorTriggers() {
		name := IndoorSpaceName(trigger)
		if zone, ok := sm.zones.Get(name); ok {
			zones[name] = zone
		}
	}
	return zones
}

// EnterOutdoor removes the shadow heaters of every zone whose trigger is in the
// loaded outdoor scene, since their heat sources are simulated live again
func (sm *SpaceManager) EnterOutdoor() {
	if !sm.IsInitialized() {
		return
	}
	for _, zone := range sm.presentTriggerZones() {
		zone.thermal.RemoveShadowHeaters()
	}
}

// LeaveOutdoor gives every zone of the unloading outdoor scene shadow heaters
// for the heat sources it owns that are still present and qualifying, then
// leaves the current zone
func (sm *SpaceManager) LeaveOutdoor() {
	if !sm.IsInitialized() {
		return
	}
	defer sm.clearCurrentSpace()

	zones := sm.presentTriggerZones()
	if len(zones) == 0 {
		return
	}

	firesPresent := map[string]world.Fire{}
	for _, fire := range sm.world.Fires() {
		firesPresent[FireID(fire)] = fire
	}
	flaresPresent := map[string]world.Flare{}
	for _, flare := range sm.world.Flares() {
		flaresPresent[GearItemID(flare.Gear())] = flare
	}
	torchesPresent := map[string]world.Torch{}
	for _, torch := range sm.world.Torches() {
		torchesPresent[GearItemID(torch.Gear())] = torch
	}
	lampsPresent := map[string]world.Lamp{}
	for _, lamp := range sm.world.Lamps() {
		lampsPresent[GearItemID(lamp.Gear())] = lamp
	}

	inHands, _ := sm.world.ItemInHands()
	for _, edge := range sm.heaters.Edges() {
		zone, ok := zones[edge.Zone]
		if !ok {
			continue
		}

		var sh shadowHeater
		if fire, present := firesPresent[edge.ID]; present {
			sh, ok = sm.fireShadow(fire)
		} else if flare, present := flaresPresent[edge.ID]; present {
			sh, ok = sm.flareShadow(flare, inHands)
		} else if torch, present := torchesPresent[edge.ID]; present {
			sh, ok = sm.torchShadow(torch, inHands)
		} else if lamp, present := lampsPresent[edge.ID]; present {
			sh, ok = sm.lampShadow(lamp, inHands)
		} else {
			ok = false
		}
		if ok {
			sm.addShadow(zone, sh)
		}
	}
}

// EnterVehicle makes the cabin of the door's vehicle current
func (sm *SpaceManager) EnterVehicle(door world.VehicleDoor) {
	if !sm.IsInitialized() {
		return
	}
	sm.setCurrentSpace(VehicleSpaceName(door))
	sm.currentMeta = VehicleMeta(door)
	if consts.DEBUG_SPACES {
		chlog.Debugf("EnterVehicle %s (%s)", sm.currentSpace, sm.currentMeta)
	}
}

// LeaveVehicle leaves the cabin. Cabins are always simulated along with the
// outdoor scene, so nothing is converted.
func (sm *SpaceManager) LeaveVehicle() {
	sm.Leave()
}
