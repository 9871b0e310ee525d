package main

import (
	"github.com/coolhome/coolhome/engine/space"
	"github.com/coolhome/coolhome/engine/world"
)

// offlineWorld is a world with nothing loaded
type offlineWorld struct{}

func (offlineWorld) Fires() []world.Fire                   { return nil }
func (offlineWorld) Flares() []world.Flare                 { return nil }
func (offlineWorld) Torches() []world.Torch                { return nil }
func (offlineWorld) Lamps() []world.Lamp                   { return nil }
func (offlineWorld) IndoorTriggers() []world.IndoorTrigger { return nil }
func (offlineWorld) ItemInHands() (world.GearItem, bool)   { return nil, false }

// savedThermal keeps the saved thermal data of a zone untouched
type savedThermal struct {
	data space.Blob
}

func newSavedThermal(name string, profile string) space.Thermal {
	return &savedThermal{data: space.Blob{}}
}

func (t *savedThermal) OnCreate()          {}
func (t *savedThermal) Heat(power float64) {}
func (t *savedThermal) AddShadowHeater(kind space.HeaterKind, id string, power float64, durationSeconds float64) {
}
func (t *savedThermal) RemoveShadowHeaters() {}
func (t *savedThermal) LoadData(data space.Blob) {
	if data != nil {
		t.data = data
	}
}
func (t *savedThermal) SaveData() space.Blob { return t.data }

type savedAurora struct {
	data space.Blob
}

func (a *savedAurora) LoadData(data space.Blob) { a.data = data }
func (a *savedAurora) SaveData() space.Blob     { return a.data }
