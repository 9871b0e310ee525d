package config

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
)

func init() {
	SetConfigFile("../../coolhome.ini.sample")
}

func TestLoad(t *testing.T) {
	config := Get()
	chlog.Debugf("coolhome config: \n%s", DumpPretty(config))
	if config == nil {
		t.FailNow()
	}
	assert.Equal(t, "filesystem", config.Storage.Type)
	assert.Equal(t, "_space_storage", config.Storage.Directory)
	assert.Equal(t, "default", config.Storage.Slot)
	assert.Equal(t, float64(1000), config.Heating.FlarePower)
	assert.T(t, !config.Heating.UseTemperatureBasedFires, "temperature based fires should be off")
	assert.Equal(t, "info", config.Log.Level)
}

func TestReload(t *testing.T) {
	Get()
	config := Reload()
	assert.T(t, config != nil, "reload returned nil")
	assert.T(t, GetHeating() == &Get().Heating, "heating config should point into the cached config")
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadBytes([]byte(""))
	assert.Equal(t, nil, err)
	assert.Equal(t, float64(consts.FIRE_POWER), cfg.Heating.FirePower)
	assert.Equal(t, float64(consts.LAMP_POWER), cfg.Heating.LampPower)
	assert.Equal(t, consts.DEFAULT_SLOT, cfg.Storage.Slot)
	assert.T(t, cfg.Log.Stderr, "stderr logging should default to on")
}

func TestHeatingSection(t *testing.T) {
	cfg, err := LoadBytes([]byte(`
[heating]
use_temperature_based_fires = true
fire_power = 2500
fire_temp_power_per_c = 55.5
`))
	assert.Equal(t, nil, err)
	assert.T(t, cfg.Heating.UseTemperatureBasedFires, "flag not read")
	assert.Equal(t, float64(2500), cfg.Heating.FirePower)
	assert.Equal(t, 55.5, cfg.Heating.FireTempPowerPerC)
	assert.Equal(t, float64(consts.TORCH_POWER), cfg.Heating.TorchPower)
}

func TestUnknownKey(t *testing.T) {
	_, err := LoadBytes([]byte("[heating]\nwarmth = 3\n"))
	assert.T(t, err != nil, "unknown key should fail")
}

func TestNegativePower(t *testing.T) {
	_, err := LoadBytes([]byte("[heating]\nlamp_power = -1\n"))
	assert.T(t, err != nil, "negative power should fail")
}

func TestStorageSection(t *testing.T) {
	cfg, err := LoadBytes([]byte("[storage]\ntype = redis\nurl = 127.0.0.1:6379\n"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "0", cfg.Storage.DB)

	cfg, err = LoadBytes([]byte("[storage]\ntype = redis_cluster\nstart_nodes_1 = 127.0.0.1:7000\nstart_nodes_2 = 127.0.0.1:7001\n"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(cfg.Storage.StartNodes))

	_, err = LoadBytes([]byte("[storage]\ntype = redis\nurl = 127.0.0.1:6379\ndb = zero\n"))
	assert.T(t, err != nil, "non-integer redis db should fail")

	_, err = LoadBytes([]byte("[storage]\ntype = sql\n"))
	assert.T(t, err != nil, "sql without url should fail")

	_, err = LoadBytes([]byte("[storage]\ntype = floppy\n"))
	assert.T(t, err != nil, "unknown type should fail")
}

func TestLogSection(t *testing.T) {
	cfg, err := LoadBytes([]byte("[log]\nlevel = debug\nfile =\nstderr = false\n"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.T(t, !cfg.Log.Stderr, "stderr not read")
}
