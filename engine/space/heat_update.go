package space

import (
	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/world"
)

// UpdateFire routes the heat of a live fire into its zone for one tick.
// Fires below min_temp_increase heat nothing.
func (sm *SpaceManager) UpdateFire(fire world.Fire) {
	if !sm.IsInitialized() {
		return
	}
	tempIncrease := fire.TempIncrease()
	if tempIncrease < sm.heating.MinTempIncrease {
		return
	}
	zone, ok := sm.SpaceOfFire(fire)
	if !ok {
		return
	}

	var power float64
	if sm.heating.UseTemperatureBasedFires {
		power = sm.heating.FireTempPowerPerC * tempIncrease
	} else {
		maxTempIncrease := fire.MaxTempIncrease()
		if maxTempIncrease <= 0 {
			return
		}
		power = sm.heating.FirePower * tempIncrease / maxTempIncrease
	}
	sm.heat(zone, FIRE, power)
}

// UpdateFlare routes the heat of a burning flare into its zone for one tick
func (sm *SpaceManager) UpdateFlare(flare world.Flare) {
	if !sm.IsInitialized() || !flare.IsBurning() {
		return
	}
	if zone, ok := sm.SpaceOfGearItem(flare.Gear()); ok {
		sm.heat(zone, FLARE, sm.heating.FlarePower)
	}
}

// UpdateTorch routes the heat of a burning torch into its zone for one tick
func (sm *SpaceManager) UpdateTorch(torch world.Torch) {
	if !sm.IsInitialized() || !torch.IsBurning() {
		return
	}
	if zone, ok := sm.SpaceOfGearItem(torch.Gear()); ok {
		sm.heat(zone, TORCH, sm.heating.TorchPower)
	}
}

// UpdateLamp routes the heat of a lit lamp into its zone for one tick
func (sm *SpaceManager) UpdateLamp(lamp world.Lamp) {
	if !sm.IsInitialized() || !lamp.IsOn() {
		return
	}
	if zone, ok := sm.SpaceOfGearItem(lamp.Gear()); ok {
		sm.heat(zone, LAMP, sm.heating.LampPower)
	}
}

func (sm *SpaceManager) heat(zone *Zone, kind HeaterKind, power float64) {
	if consts.DEBUG_HEAT {
		chlog.Debugf("%s: %s heat %v", zone, kind, power)
	}
	zone.thermal.Heat(power)
}
