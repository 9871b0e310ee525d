package storagecommon

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/xiaonanln/typeconv"
)

// SNAPSHOT_VERSION is written into every snapshot
const SNAPSHOT_VERSION = 1

const (
	keyVersion         = "version"
	keyCurrentZoneName = "currentZoneName"
	keyAuroraBlob      = "auroraBlob"
	keyZones           = "zones"
	keyHeaterEdges     = "heaterEdges"
)

// Blob is opaque collaborator data, only copied around by the zone core
type Blob = map[string]interface{}

// SpaceManagerState is the persisted form of the zone and heater registries
type SpaceManagerState struct {
	CurrentZoneName *string
	AuroraBlob      Blob
	Zones           map[string]Blob
	HeaterEdges     map[string]string
}

// NewSpaceManagerState returns an empty state
func NewSpaceManagerState() *SpaceManagerState {
	return &SpaceManagerState{
		Zones:       map[string]Blob{},
		HeaterEdges: map[string]string{},
	}
}

// ZoneNames returns the zone names in sorted order
func (st *SpaceManagerState) ZoneNames() []string {
	names := make([]string, 0, len(st.Zones))
	for name := range st.Zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToData converts the state to generic data that every backend can encode
func (st *SpaceManagerState) ToData() map[string]interface{} {
	zones := make(map[string]interface{}, len(st.Zones))
	for name, blob := range st.Zones {
		if blob == nil {
			blob = Blob{}
		}
		zones[name] = blob
	}
	edges := make(map[string]interface{}, len(st.HeaterEdges))
	for id, zone := range st.HeaterEdges {
		edges[id] = zone
	}

	data := map[string]interface{}{
		keyVersion:     SNAPSHOT_VERSION,
		keyZones:       zones,
		keyHeaterEdges: edges,
	}
	if st.CurrentZoneName != nil {
		data[keyCurrentZoneName] = *st.CurrentZoneName
	}
	if st.AuroraBlob != nil {
		data[keyAuroraBlob] = st.AuroraBlob
	}
	return data
}

// StateFromData converts generic data read by a backend back to a state
func StateFromData(data interface{}) (*SpaceManagerState, error) {
	m, ok := asMap(data)
	if !ok {
		return nil, errors.Errorf("snapshot is not a map: %T", data)
	}

	if v, ok := m[keyVersion]; ok {
		if version := typeconv.Int(v); version > SNAPSHOT_VERSION {
			return nil, errors.Errorf("snapshot version %d is newer than %d", version, SNAPSHOT_VERSION)
		}
	}

	st := NewSpaceManagerState()
	if v, ok := m[keyCurrentZoneName]; ok && v != nil {
		name, ok := v.(string)
		if !ok {
			return nil, errors.Errorf("%s is not a string: %T", keyCurrentZoneName, v)
		}
		st.CurrentZoneName = &name
	}

	if v, ok := m[keyAuroraBlob]; ok && v != nil {
		blob, ok := asMap(v)
		if !ok {
			return nil, errors.Errorf("%s is not a map: %T", keyAuroraBlob, v)
		}
		st.AuroraBlob = blob
	}

	if v, ok := m[keyZones]; ok && v != nil {
		zones, ok := asMap(v)
		if !ok {
			return nil, errors.Errorf("%s is not a map: %T", keyZones, v)
		}
		for name, zv := range zones {
			blob, ok := asMap(zv)
			if !ok && zv != nil {
				return nil, errors.Errorf("zone %s is not a map: %T", name, zv)
			}
			if blob == nil {
				blob = Blob{}
			}
			st.Zones[name] = blob
		}
	}

	if v, ok := m[keyHeaterEdges]; ok && v != nil {
		edges, ok := asMap(v)
		if !ok {
			return nil, errors.Errorf("%s is not a map: %T", keyHeaterEdges, v)
		}
		for id, ev := range edges {
			zone, ok := ev.(string)
			if !ok {
				return nil, errors.Errorf("heater %s owner is not a string: %T", id, ev)
			}
			st.HeaterEdges[id] = zone
		}
	}
	return st, nil
}

// asMap normalizes decoded maps to map[string]interface{}, recursively
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		for k, iv := range m {
			m[k] = Normalize(iv)
		}
		return m, true
	case map[interface{}]interface{}:
		return asMap(typeconv.MapStringAnything(m))
	}
	return nil, false
}

// Normalize converts map[interface{}]interface{} produced by some decoders into
// map[string]interface{}, at any depth
func Normalize(v interface{}) interface{} {
	switch iv := v.(type) {
	case map[string]interface{}, map[interface{}]interface{}:
		m, _ := asMap(iv)
		return m
	case []interface{}:
		for i, elem := range iv {
			iv[i] = Normalize(elem)
		}
		return iv
	}
	return v
}
