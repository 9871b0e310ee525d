package space

import (
	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/world"
)

// HeaterKind is the kind of a heat source
type HeaterKind int

const (
	FIRE HeaterKind = iota
	FLARE
	TORCH
	LAMP
)

func (kind HeaterKind) String() string {
	switch kind {
	case FIRE:
		return "FIRE"
	case FLARE:
		return "FLARE"
	case TORCH:
		return "TORCH"
	case LAMP:
		return "LAMP"
	}
	return "UNKNOWN"
}

// shadowHeater is a heat source frozen at the moment it stops being simulated
type shadowHeater struct {
	kind     HeaterKind
	id       string
	power    float64
	duration float64
}

// Shadow heaters of fires always use the nominal fire power: the live
// temperature cannot be sampled while the fire is not simulated.
func (sm *SpaceManager) fireShadow(fire world.Fire) (shadowHeater, bool) {
	duration := fire.RemainingLifetimeSeconds()
	if duration < sm.heating.MinShadowSeconds {
		return shadowHeater{}, false
	}
	return shadowHeater{FIRE, FireID(fire), sm.heating.FirePower, duration}, true
}

func (sm *SpaceManager) flareShadow(flare world.Flare, inHands world.GearItem) (shadowHeater, bool) {
	if !flare.IsBurning() || world.SameItem(flare.Gear(), inHands) {
		return shadowHeater{}, false
	}
	duration := flare.NormalizedBurnTimeLeft() * flare.ModifiedBurnLifetimeMinutes() * 60
	if duration < sm.heating.MinShadowSeconds {
		return shadowHeater{}, false
	}
	return shadowHeater{FLARE, GearItemID(flare.Gear()), sm.heating.FlarePower, duration}, true
}

func (sm *SpaceManager) torchShadow(torch world.Torch, inHands world.GearItem) (shadowHeater, bool) {
	if !torch.IsBurning() || world.SameItem(torch.Gear(), inHands) {
		return shadowHeater{}, false
	}
	duration := (1 - torch.BurnProgress()) * torch.ModifiedBurnLifetimeMinutes() * 60
	if duration < sm.heating.MinShadowSeconds {
		return shadowHeater{}, false
	}
	return shadowHeater{TORCH, GearItemID(torch.Gear()), sm.heating.TorchPower, duration}, true
}

func (sm *SpaceManager) lampShadow(lamp world.Lamp, inHands world.GearItem) (shadowHeater, bool) {
	if !lamp.IsOn() || world.SameItem(lamp.Gear(), inHands) {
		return shadowHeater{}, false
	}
	rate := lamp.ModifiedFuelBurnLitersPerHour()
	if rate <= 0 {
		return shadowHeater{}, false
	}
	duration := lamp.CurrentFuelLiters() / rate * 3600
	if duration < sm.heating.MinShadowSeconds {
		return shadowHeater{}, false
	}
	return shadowHeater{LAMP, GearItemID(lamp.Gear()), sm.heating.LampPower, duration}, true
}

func (sm *SpaceManager) addShadow(zone *Zone, sh shadowHeater) {
	if consts.DEBUG_SPACES {
		chlog.Debugf("%s: shadow %s %s power=%v duration=%.0fs", zone, sh.kind, sh.id, sh.power, sh.duration)
	}
	zone.thermal.AddShadowHeater(sh.kind, sh.id, sh.power, sh.duration)
}
