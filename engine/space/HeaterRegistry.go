package space

import "sort"

// HeaterEdge is the ownership of one heater by one zone
type HeaterEdge struct {
	ID   string
	Zone string
}

// HeaterRegistry maps heater identities to the name of their owning zone.
// A heater is owned by at most one zone. A nil HeaterRegistry is empty and
// refuses registrations.
type HeaterRegistry struct {
	owners map[string]string
}

func newHeaterRegistry() *HeaterRegistry {
	return &HeaterRegistry{
		owners: map[string]string{},
	}
}

// Register makes zone the owner of heater id. An already owned heater keeps its owner.
func (hr *HeaterRegistry) Register(id string, zone string) bool {
	if hr == nil {
		return false
	}
	if _, ok := hr.owners[id]; ok {
		return false
	}
	hr.owners[id] = zone
	return true
}

// Unregister drops the ownership of heater id, if any
func (hr *HeaterRegistry) Unregister(id string) bool {
	if hr == nil {
		return false
	}
	if _, ok := hr.owners[id]; !ok {
		return false
	}
	delete(hr.owners, id)
	return true
}

// OwnerOf returns the name of the zone owning heater id
func (hr *HeaterRegistry) OwnerOf(id string) (string, bool) {
	if hr == nil {
		return "", false
	}
	zone, ok := hr.owners[id]
	return zone, ok
}

// HasAny returns whether any heater is owned by zone
func (hr *HeaterRegistry) HasAny(zone string) bool {
	if hr == nil {
		return false
	}
	for _, owner := range hr.owners {
		if owner == zone {
			return true
		}
	}
	return false
}

// Count returns the number of heaters owned by zone
func (hr *HeaterRegistry) Count(zone string) int {
	if hr == nil {
		return 0
	}
	n := 0
	for _, owner := range hr.owners {
		if owner == zone {
			n++
		}
	}
	return n
}

// Edges returns all ownership edges sorted by heater identity
func (hr *HeaterRegistry) Edges() []HeaterEdge {
	if hr == nil {
		return nil
	}
	edges := make([]HeaterEdge, 0, len(hr.owners))
	for id, zone := range hr.owners {
		edges = append(edges, HeaterEdge{ID: id, Zone: zone})
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].ID < edges[j].ID
	})
	return edges
}

// Len returns the number of registered heaters
func (hr *HeaterRegistry) Len() int {
	if hr == nil {
		return 0
	}
	return len(hr.owners)
}

// Clear removes all heaters
func (hr *HeaterRegistry) Clear() {
	if hr == nil {
		return
	}
	hr.owners = map[string]string{}
}
