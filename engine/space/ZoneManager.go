package space

import (
	"sort"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
)

// ZoneManager owns every known zone, keyed by name.
//
// A nil ZoneManager is an empty registry that cannot create zones.
type ZoneManager struct {
	zones      map[string]*Zone
	newThermal ThermalFactory
}

func newZoneManager(newThermal ThermalFactory) *ZoneManager {
	return &ZoneManager{
		zones:      map[string]*Zone{},
		newThermal: newThermal,
	}
}

// Get returns the zone of name
func (zm *ZoneManager) Get(name string) (*Zone, bool) {
	if zm == nil {
		return nil, false
	}
	zone, ok := zm.zones[name]
	return zone, ok
}

// GetOrCreate returns the zone of name, creating it with a fresh thermal state if unknown
func (zm *ZoneManager) GetOrCreate(name string, profile string) *Zone {
	if zm == nil {
		return nil
	}
	if zone, ok := zm.zones[name]; ok {
		return zone
	}

	zone := zm.newZone(name, profile)
	zone.thermal.OnCreate()
	chlog.Infof("Zone created: %s", zone)
	return zone
}

// load creates the zone of name from saved thermal data, replacing any zone of the same name
func (zm *ZoneManager) load(name string, data Blob) *Zone {
	zone := zm.newZone(name, name)
	zone.thermal.LoadData(data)
	if consts.DEBUG_SAVE_LOAD {
		chlog.Debugf("Zone loaded: %s", zone)
	}
	return zone
}

func (zm *ZoneManager) newZone(name string, profile string) *Zone {
	zone := &Zone{
		Name:    name,
		Profile: profile,
		thermal: zm.newThermal(name, profile),
	}
	zm.zones[name] = zone
	return zone
}

// Remove removes the zone of name. Callers make sure no heater is owned by it.
func (zm *ZoneManager) Remove(name string) bool {
	if zm == nil {
		return false
	}
	if _, ok := zm.zones[name]; !ok {
		return false
	}
	delete(zm.zones, name)
	return true
}

// Clear removes all zones
func (zm *ZoneManager) Clear() {
	if zm == nil {
		return
	}
	zm.zones = map[string]*Zone{}
}

// Names returns zone names in sorted order
func (zm *ZoneManager) Names() []string {
	if zm == nil {
		return nil
	}
	names := make([]string, 0, len(zm.zones))
	for name := range zm.zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of zones
func (zm *ZoneManager) Len() int {
	if zm == nil {
		return 0
	}
	return len(zm.zones)
}
