package consts

import "time"

// Heater power defaults, in the thermal collaborator's power units
const (
	// FIRE_POWER is the nominal power of a fully stoked fire
	FIRE_POWER = 3000
	// FIRE_TEMP_POWER_PER_C is the power per degree of fire temperature increase,
	// used when temperature based fires are enabled
	FIRE_TEMP_POWER_PER_C = 40
	// FLARE_POWER is the power of a burning flare
	FLARE_POWER = 1000
	// TORCH_POWER is the power of a burning torch
	TORCH_POWER = 800
	// LAMP_POWER is the power of a lit fuel lamp
	LAMP_POWER = 400
)

// Thresholds
const (
	// MIN_TEMP_INCREASE is the fire temperature increase (C) below which a fire heats nothing
	MIN_TEMP_INCREASE = 1
	// MIN_SHADOW_SECONDS is the shortest remaining duration worth a shadow heater
	MIN_SHADOW_SECONDS = 1
)

// Storage
const (
	// SPACE_MANAGER_TYPE is the type name snapshots are stored under
	SPACE_MANAGER_TYPE = "SpaceManager"
	// DEFAULT_SLOT is the snapshot slot used when none is configured
	DEFAULT_SLOT = "default"
	// STORAGE_SAVE_WARN_THRESHOLD is the save duration that triggers an opmon warning
	STORAGE_SAVE_WARN_THRESHOLD = time.Millisecond * 100
	// STORAGE_LOAD_WARN_THRESHOLD is the load duration that triggers an opmon warning
	STORAGE_LOAD_WARN_THRESHOLD = time.Millisecond * 100
)

// Debug Options
const (
	// DEBUG_SPACES prints space transition debug logs
	DEBUG_SPACES = false
	// DEBUG_SAVE_LOAD prints save & load debug logs
	DEBUG_SAVE_LOAD = false
	// DEBUG_HEAT prints per tick heat routing logs, very verbose
	DEBUG_HEAT = false
)
