package space

import (
	"strconv"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/uuid"
	"github.com/coolhome/coolhome/engine/world"
)

// FireID returns the persistent identity of a fire.
//
// A fire spawned without one gets an identity generated from its position,
// which is attached to the fire so later calls return it unchanged.
func FireID(fire world.Fire) string {
	if guid, ok := fire.GUID(); ok && guid != "" {
		return guid
	}

	pos := fire.Position()
	guid := uuid.GenSeededUUID(pos.Seed())
	fire.AssignGUID(guid)
	chlog.Infof("Fire %s at %s has no identity, assigned %s", fire.Name(), pos, guid)
	return guid
}

// GearItemID returns the identity of a gear item heater
func GearItemID(gi world.GearItem) string {
	return strconv.FormatInt(gi.InstanceID(), 10)
}
