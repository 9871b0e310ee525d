package space

import (
	"fmt"

	"github.com/coolhome/coolhome/engine/storage/storage_common"
)

// Blob is zone thermal data, opaque to the zone core
type Blob = storagecommon.Blob

// Thermal is the thermal state of one zone. The zone core only routes heat into it.
type Thermal interface {
	// OnCreate initializes a brand new zone
	OnCreate()
	// Heat adds live heat for the current tick
	Heat(power float64)
	// AddShadowHeater adds a heater that keeps warming the zone for durationSeconds
	// of simulated time while its real heat source is not simulated
	AddShadowHeater(kind HeaterKind, id string, power float64, durationSeconds float64)
	RemoveShadowHeaters()
	LoadData(data Blob)
	SaveData() Blob
}

// ThermalFactory creates the thermal state for a zone. profile selects the
// thermal model: the vehicle kind for cabins, the zone name otherwise.
type ThermalFactory func(name string, profile string) Thermal

// Zone is a named region with its own thermal state
type Zone struct {
	Name    string
	Profile string
	thermal Thermal
	current bool
}

// Thermal returns the thermal state owned by the zone
func (zone *Zone) Thermal() Thermal {
	return zone.thermal
}

// IsCurrent returns whether the observer is in this zone
func (zone *Zone) IsCurrent() bool {
	return zone.current
}

func (zone *Zone) String() string {
	if zone == nil {
		return "Zone<nil>"
	}
	return fmt.Sprintf("Zone<%s|%s>", zone.Name, zone.Profile)
}
