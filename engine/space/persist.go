package space

import (
	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
)

// LoadData replaces the registries with the saved snapshot.
//
// A missing snapshot leaves the registries empty. Heaters owned by a zone
// missing from the snapshot are dropped. The vehicle kind of the previous
// current zone is forgotten along with it.
func (sm *SpaceManager) LoadData() error {
	if !sm.IsInitialized() {
		return nil
	}
	sm.zones.Clear()
	sm.heaters.Clear()
	sm.hasCurrent = false
	sm.currentSpace = ""
	sm.currentMeta = ""
	sm.objectToPlace = nil

	if sm.store == nil {
		return nil
	}
	state, err := sm.store.LoadSpaceManager()
	if err != nil {
		chlog.Errorf("Load space manager failed: %s", err)
		return err
	}
	if state == nil {
		if consts.DEBUG_SAVE_LOAD {
			chlog.Debugf("No space manager snapshot, starting empty")
		}
		return nil
	}
	sm.restore(state)
	return nil
}

func (sm *SpaceManager) restore(state *storagecommon.SpaceManagerState) {
	if sm.aurora != nil && state.AuroraBlob != nil {
		sm.aurora.LoadData(state.AuroraBlob)
	}

	for _, name := range state.ZoneNames() {
		sm.zones.load(name, state.Zones[name])
	}
	if state.CurrentZoneName != nil {
		sm.setCurrentSpace(*state.CurrentZoneName)
	}

	skipped := 0
	for id, zone := range state.HeaterEdges {
		if _, ok := sm.zones.Get(zone); !ok {
			chlog.Warnf("Heater %s is owned by unknown zone %s, dropped", id, zone)
			skipped++
			continue
		}
		sm.heaters.Register(id, zone)
	}
	chlog.Infof("Space manager loaded: %d zones, %d heaters, %d dropped", sm.zones.Len(), sm.heaters.Len(), skipped)
}

// Snapshot returns the persisted form of the registries
func (sm *SpaceManager) Snapshot() *storagecommon.SpaceManagerState {
	state := storagecommon.NewSpaceManagerState()
	if !sm.IsInitialized() {
		return state
	}
	if sm.hasCurrent {
		name := sm.currentSpace
		state.CurrentZoneName = &name
	}
	if sm.aurora != nil {
		state.AuroraBlob = sm.aurora.SaveData()
	}
	for _, edge := range sm.heaters.Edges() {
		state.HeaterEdges[edge.ID] = edge.Zone
	}
	for _, name := range sm.zones.Names() {
		zone, _ := sm.zones.Get(name)
		state.Zones[name] = zone.thermal.SaveData()
	}
	return state
}

// SaveData saves the registries to the snapshot store
func (sm *SpaceManager) SaveData() error {
	if !sm.IsInitialized() || sm.store == nil {
		return nil
	}
	state := sm.Snapshot()
	if err := sm.store.SaveSpaceManager(state); err != nil {
		chlog.Errorf("Save space manager failed: %s", err)
		return err
	}
	if consts.DEBUG_SAVE_LOAD {
		chlog.Debugf("Space manager saved: %d zones, %d heaters", len(state.Zones), len(state.HeaterEdges))
	}
	return nil
}
