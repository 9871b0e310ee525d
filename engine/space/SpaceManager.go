// Package space tracks zones and the heat sources they own, and turns heat
// sources that stop being simulated into shadow heaters of their zone.
//
// All operations run synchronously on the caller's goroutine. A SpaceManager
// must not be used concurrently.
package space

import (
	"sort"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/config"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/coolhome/coolhome/engine/world"
)

const (
	META_PLANE = "Plane"
	META_TRUCK = "Truck"
)

// SnapshotStore loads and saves the space manager snapshot
type SnapshotStore interface {
	LoadSpaceManager() (*storagecommon.SpaceManagerState, error)
	SaveSpaceManager(state *storagecommon.SpaceManagerState) error
}

// Aurora is an unrelated collaborator whose data is saved along with the zones
type Aurora interface {
	LoadData(data Blob)
	SaveData() Blob
}

// Options configures a SpaceManager
type Options struct {
	World      world.World
	Store      SnapshotStore // optional, nothing is loaded or saved without it
	NewThermal ThermalFactory
	Aurora     Aurora                // optional
	Heating    *config.HeatingConfig // defaults when nil
}

// SpaceManager is the registry of zones and heaters
type SpaceManager struct {
	world      world.World
	store      SnapshotStore
	newThermal ThermalFactory
	aurora     Aurora
	heating    config.HeatingConfig

	zones   *ZoneManager
	heaters *HeaterRegistry

	currentSpace  string
	hasCurrent    bool
	currentMeta   string
	objectToPlace world.GearItem
}

// NewSpaceManager creates an uninitialized SpaceManager
func NewSpaceManager(opts Options) *SpaceManager {
	if opts.World == nil {
		chlog.Panicf("space manager: world is nil")
	}
	if opts.NewThermal == nil {
		chlog.Panicf("space manager: thermal factory is nil")
	}

	sm := &SpaceManager{
		world:      opts.World,
		store:      opts.Store,
		newThermal: opts.NewThermal,
		aurora:     opts.Aurora,
	}
	if opts.Heating != nil {
		sm.heating = *opts.Heating
	} else {
		sm.heating = config.Default().Heating
	}
	return sm
}

// Init creates the registries and loads the saved snapshot.
//
// The registries stay usable and empty when loading fails.
func (sm *SpaceManager) Init() error {
	if sm.IsInitialized() {
		return nil
	}
	sm.zones = newZoneManager(sm.newThermal)
	sm.heaters = newHeaterRegistry()
	return sm.LoadData()
}

// Deinit drops the registries. Every operation is a no-op until Init is called again.
func (sm *SpaceManager) Deinit() {
	sm.zones = nil
	sm.heaters = nil
	sm.hasCurrent = false
	sm.currentSpace = ""
	sm.currentMeta = ""
	sm.objectToPlace = nil
}

// IsInitialized returns whether Init was called
func (sm *SpaceManager) IsInitialized() bool {
	return sm.zones != nil
}

// Zones returns the zone registry
func (sm *SpaceManager) Zones() *ZoneManager {
	return sm.zones
}

// Heaters returns the heater registry
func (sm *SpaceManager) Heaters() *HeaterRegistry {
	return sm.heaters
}

// GetCurrentSpaceName returns the name of the zone the observer is in
func (sm *SpaceManager) GetCurrentSpaceName() (string, bool) {
	return sm.currentSpace, sm.hasCurrent
}

// GetCurrentSpaceMeta returns the vehicle kind of the current zone, if it is a cabin
func (sm *SpaceManager) GetCurrentSpaceMeta() (string, bool) {
	return sm.currentMeta, sm.currentMeta != ""
}

// GetCurrentSpace returns the zone the observer is in, if it is known
func (sm *SpaceManager) GetCurrentSpace() (*Zone, bool) {
	if !sm.IsInitialized() || !sm.hasCurrent {
		return nil, false
	}
	return sm.zones.Get(sm.currentSpace)
}

func (sm *SpaceManager) setCurrentSpace(name string) {
	sm.unmarkCurrent()
	sm.currentSpace = name
	sm.hasCurrent = true
	if zone, ok := sm.zones.Get(name); ok {
		zone.current = true
	}
}

func (sm *SpaceManager) clearCurrentSpace() {
	sm.unmarkCurrent()
	sm.currentSpace = ""
	sm.hasCurrent = false
}

func (sm *SpaceManager) unmarkCurrent() {
	if zone, ok := sm.GetCurrentSpace(); ok {
		zone.current = false
	}
}

// createCurrentSpace returns the current zone, creating it when the observer is
// in a zone nothing was registered in yet
func (sm *SpaceManager) createCurrentSpace() (*Zone, bool) {
	if !sm.hasCurrent {
		return nil, false
	}
	if zone, ok := sm.zones.Get(sm.currentSpace); ok {
		return zone, true
	}

	profile := sm.currentSpace
	if sm.currentMeta != "" {
		profile = sm.currentMeta
	}
	zone := sm.zones.GetOrCreate(sm.currentSpace, profile)
	zone.current = true
	return zone, true
}

// HasRegisteredHeaters returns whether any heater is owned by the zone of name
func (sm *SpaceManager) HasRegisteredHeaters(name string) bool {
	if !sm.IsInitialized() {
		return false
	}
	return sm.heaters.HasAny(name)
}

// RemoveIrrelevantSpace removes the zone of name if it owns no heaters
func (sm *SpaceManager) RemoveIrrelevantSpace(name string) bool {
	if !sm.IsInitialized() || sm.heaters.HasAny(name) {
		return false
	}
	if sm.hasCurrent && sm.currentSpace == name {
		return false
	}
	if !sm.zones.Remove(name) {
		return false
	}
	chlog.Infof("Zone removed: %s", name)
	return true
}

// PruneIrrelevantSpaces removes every zone that owns no heaters and is not the
// current one, returning the removed names in sorted order
func (sm *SpaceManager) PruneIrrelevantSpaces() []string {
	if !sm.IsInitialized() {
		return nil
	}
	var removed []string
	for _, name := range sm.zones.Names() {
		if sm.RemoveIrrelevantSpace(name) {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	return removed
}

// RegisterFire makes the current zone the owner of fire
func (sm *SpaceManager) RegisterFire(fire world.Fire) {
	sm.registerHeater(FIRE, func() string { return FireID(fire) })
}

// RegisterGearItemHeater makes the current zone the owner of a gear item heater
func (sm *SpaceManager) RegisterGearItemHeater(gi world.GearItem) {
	sm.registerHeater(heaterKindOf(gi), func() string { return GearItemID(gi) })
}

func (sm *SpaceManager) registerHeater(kind HeaterKind, getID func() string) {
	if !sm.IsInitialized() || !sm.hasCurrent {
		return
	}
	zone, _ := sm.createCurrentSpace()
	id := getID()
	if sm.heaters.Register(id, zone.Name) {
		if consts.DEBUG_SPACES {
			chlog.Debugf("%s: registered %s %s", zone, kind, id)
		}
	} else if consts.DEBUG_SPACES {
		owner, _ := sm.heaters.OwnerOf(id)
		chlog.Debugf("%s: %s %s already owned by %s", zone, kind, id, owner)
	}
}

// UnregisterHeater drops the ownership of heater id
func (sm *SpaceManager) UnregisterHeater(id string) {
	if !sm.IsInitialized() {
		return
	}
	if sm.heaters.Unregister(id) && consts.DEBUG_SPACES {
		chlog.Debugf("unregistered heater %s", id)
	}
}

// TryRegisterGearItem registers gi if it is a burning flare, a burning torch or a lit lamp
func (sm *SpaceManager) TryRegisterGearItem(gi world.GearItem) bool {
	if gi == nil || !isActiveHeater(gi) {
		return false
	}
	sm.RegisterGearItemHeater(gi)
	return true
}

func isActiveHeater(gi world.GearItem) bool {
	if flare, ok := gi.Flare(); ok {
		return flare.IsBurning()
	}
	if torch, ok := gi.Torch(); ok {
		return torch.IsBurning()
	}
	if lamp, ok := gi.Lamp(); ok {
		return lamp.IsOn()
	}
	return false
}

func isHeaterItem(gi world.GearItem) bool {
	_, isFlare := gi.Flare()
	_, isTorch := gi.Torch()
	_, isLamp := gi.Lamp()
	return isFlare || isTorch || isLamp
}

func heaterKindOf(gi world.GearItem) HeaterKind {
	if _, ok := gi.Torch(); ok {
		return TORCH
	}
	if _, ok := gi.Lamp(); ok {
		return LAMP
	}
	return FLARE
}

// SpaceOfFire returns the zone owning fire
func (sm *SpaceManager) SpaceOfFire(fire world.Fire) (*Zone, bool) {
	if !sm.IsInitialized() {
		return nil, false
	}
	return sm.ownerZone(FireID(fire))
}

// SpaceOfGearItem returns the zone owning gear item gi
func (sm *SpaceManager) SpaceOfGearItem(gi world.GearItem) (*Zone, bool) {
	if !sm.IsInitialized() {
		return nil, false
	}
	return sm.ownerZone(GearItemID(gi))
}

func (sm *SpaceManager) ownerZone(id string) (*Zone, bool) {
	name, ok := sm.heaters.OwnerOf(id)
	if !ok {
		return nil, false
	}
	return sm.zones.Get(name)
}
