package config

import (
	"strings"

	"strconv"

	"fmt"

	"encoding/json"

	"sync"

	"path"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

const (
	_DEFAULT_CONFIG_FILE  = "coolhome.ini"
	_DEFAULT_LOG_LEVEL    = "info"
	_DEFAULT_STORAGE_DB   = "coolhome"
	_DEFAULT_STORAGE_DIR  = "_space_storage"
	_DEFAULT_SQL_DRIVER   = "sqlite"
	_DEFAULT_LOG_FILE     = "coolhome.log"
	_DEFAULT_REDIS_DB_IDX = "0"
)

var (
	configFilePath = _DEFAULT_CONFIG_FILE
	coolHomeConfig *CoolHomeConfig
	configLock     sync.Mutex
)

// HeatingConfig defines the heater power rules
type HeatingConfig struct {
	UseTemperatureBasedFires bool
	FirePower                float64
	FireTempPowerPerC        float64
	FlarePower               float64
	TorchPower               float64
	LampPower                float64
	MinTempIncrease          float64
	MinShadowSeconds         float64
}

// StorageConfig defines fields of storage config
type StorageConfig struct {
	Type       string // Type of storage (filesystem, redis, redis_cluster, mongodb, sql)
	Directory  string // Directory of filesystem storage (filesystem)
	Url        string // Connection URL (mongodb, redis, sql)
	DB         string // Database name (mongodb) or db index (redis)
	Driver     string // SQL Driver name (sql)
	Slot       string // Snapshot slot to load from and save to
	StartNodes []string
}

// LogConfig defines fields of log config
type LogConfig struct {
	Level  string
	File   string
	Stderr bool
}

// CoolHomeConfig defines the total config file structure
type CoolHomeConfig struct {
	Heating HeatingConfig
	Storage StorageConfig
	Log     LogConfig
}

// SetConfigFile sets the config file path (coolhome.ini by default)
func SetConfigFile(f string) {
	configLock.Lock()
	configFilePath = f
	coolHomeConfig = nil
	configLock.Unlock()
}

// GetConfigDir returns the directory of coolhome.ini
func GetConfigDir() string {
	dir, _ := path.Split(configFilePath)
	return dir
}

// GetConfigFilePath returns the config file path
func GetConfigFilePath() string {
	return configFilePath
}

// Get returns the total config, panics if the config file is invalid
func Get() *CoolHomeConfig {
	configLock.Lock()
	defer configLock.Unlock()
	if coolHomeConfig == nil {
		cfg, err := Load(configFilePath)
		if err != nil {
			chlog.Panicf("read config error: %s", err)
		}
		coolHomeConfig = cfg
	}
	return coolHomeConfig
}

// Reload forces the whole config to be read again
func Reload() *CoolHomeConfig {
	configLock.Lock()
	coolHomeConfig = nil
	configLock.Unlock()

	return Get()
}

// GetHeating returns the heating config
func GetHeating() *HeatingConfig {
	return &Get().Heating
}

// GetStorage returns the storage config
func GetStorage() *StorageConfig {
	return &Get().Storage
}

// GetLog returns the log config
func GetLog() *LogConfig {
	return &Get().Log
}

// DumpPretty format config to string in pretty format
func DumpPretty(cfg interface{}) string {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

// Default returns the config used when a section or key is absent
func Default() *CoolHomeConfig {
	cfg := &CoolHomeConfig{}
	setHeatingDefaults(&cfg.Heating)
	setStorageDefaults(&cfg.Storage)
	setLogDefaults(&cfg.Log)
	return cfg
}

// Load reads and validates the config file at configPath
func Load(configPath string) (*CoolHomeConfig, error) {
	chlog.Infof("Using config file: %s", configPath)
	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return parse(iniFile)
}

// LoadBytes reads the config from ini source text
func LoadBytes(data []byte) (*CoolHomeConfig, error) {
	iniFile, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return parse(iniFile)
}

func parse(iniFile *ini.File) (*CoolHomeConfig, error) {
	config := Default()

	for _, sec := range iniFile.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		secName := strings.ToLower(sec.Name())

		var err error
		if secName == "heating" {
			err = readHeatingConfig(sec, &config.Heating)
		} else if secName == "storage" {
			err = readStorageConfig(sec, &config.Storage)
		} else if secName == "log" {
			err = readLogConfig(sec, &config.Log)
		} else {
			chlog.Errorf("unknown section: %s", secName)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := validateHeatingConfig(&config.Heating); err != nil {
		return nil, err
	}
	if err := validateStorageConfig(&config.Storage); err != nil {
		return nil, err
	}
	return config, nil
}

func setHeatingDefaults(hc *HeatingConfig) {
	hc.UseTemperatureBasedFires = false
	hc.FirePower = consts.FIRE_POWER
	hc.FireTempPowerPerC = consts.FIRE_TEMP_POWER_PER_C
	hc.FlarePower = consts.FLARE_POWER
	hc.TorchPower = consts.TORCH_POWER
	hc.LampPower = consts.LAMP_POWER
	hc.MinTempIncrease = consts.MIN_TEMP_INCREASE
	hc.MinShadowSeconds = consts.MIN_SHADOW_SECONDS
}

func readHeatingConfig(sec *ini.Section, hc *HeatingConfig) error {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "use_temperature_based_fires" {
			hc.UseTemperatureBasedFires = key.MustBool(hc.UseTemperatureBasedFires)
		} else if name == "fire_power" {
			hc.FirePower = key.MustFloat64(hc.FirePower)
		} else if name == "fire_temp_power_per_c" {
			hc.FireTempPowerPerC = key.MustFloat64(hc.FireTempPowerPerC)
		} else if name == "flare_power" {
			hc.FlarePower = key.MustFloat64(hc.FlarePower)
		} else if name == "torch_power" {
			hc.TorchPower = key.MustFloat64(hc.TorchPower)
		} else if name == "lamp_power" {
			hc.LampPower = key.MustFloat64(hc.LampPower)
		} else if name == "min_temp_increase" {
			hc.MinTempIncrease = key.MustFloat64(hc.MinTempIncrease)
		} else if name == "min_shadow_seconds" {
			hc.MinShadowSeconds = key.MustFloat64(hc.MinShadowSeconds)
		} else {
			return errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func validateHeatingConfig(hc *HeatingConfig) error {
	powers := map[string]float64{
		"fire_power":            hc.FirePower,
		"fire_temp_power_per_c": hc.FireTempPowerPerC,
		"flare_power":           hc.FlarePower,
		"torch_power":           hc.TorchPower,
		"lamp_power":            hc.LampPower,
	}
	for name, power := range powers {
		if power < 0 {
			return errors.Errorf("[heating] %s must not be negative: %v", name, power)
		}
	}
	if hc.MinShadowSeconds < 0 {
		return errors.Errorf("[heating] min_shadow_seconds must not be negative: %v", hc.MinShadowSeconds)
	}
	return nil
}

func setStorageDefaults(config *StorageConfig) {
	config.Type = "filesystem"
	config.Directory = _DEFAULT_STORAGE_DIR
	config.DB = _DEFAULT_STORAGE_DB
	config.Url = ""
	config.Driver = _DEFAULT_SQL_DRIVER
	config.Slot = consts.DEFAULT_SLOT
	config.StartNodes = nil
}

func readStorageConfig(sec *ini.Section, config *StorageConfig) error {
	dbSet := false
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "type" {
			config.Type = key.MustString(config.Type)
		} else if name == "directory" {
			config.Directory = key.MustString(config.Directory)
		} else if name == "url" {
			config.Url = key.MustString(config.Url)
		} else if name == "db" {
			config.DB = key.MustString(config.DB)
			dbSet = true
		} else if name == "driver" {
			config.Driver = key.MustString(config.Driver)
		} else if name == "slot" {
			config.Slot = key.MustString(config.Slot)
		} else if strings.HasPrefix(name, "start_nodes_") {
			config.StartNodes = append(config.StartNodes, key.MustString(""))
		} else {
			return errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}

	if config.Type == "redis" && !dbSet {
		config.DB = _DEFAULT_REDIS_DB_IDX
	}
	return nil
}

func validateStorageConfig(config *StorageConfig) error {
	if config.Slot == "" {
		return errors.New("slot is not set in storage config")
	}

	switch config.Type {
	case "filesystem":
		if config.Directory == "" {
			return errors.Errorf("directory is not set in %s storage config", config.Type)
		}
	case "mongodb":
		if config.Url == "" {
			return errors.Errorf("url is not set in %s storage config", config.Type)
		}
		if config.DB == "" {
			return errors.Errorf("db is not set in %s storage config", config.Type)
		}
	case "redis":
		if config.Url == "" {
			return errors.New("redis host is not set")
		}
		if _, err := strconv.Atoi(config.DB); err != nil {
			return errors.Wrap(err, "redis db must be integer")
		}
	case "redis_cluster":
		if len(config.StartNodes) == 0 {
			return errors.New("must have at least 1 start_nodes for [storage].redis_cluster")
		}
		for _, s := range config.StartNodes {
			if s == "" {
				return errors.New("start_nodes must not be empty")
			}
		}
	case "sql":
		if config.Driver == "" {
			return errors.New("sql driver is not set")
		}
		if config.Url == "" {
			return errors.New("db url is not set")
		}
	default:
		return errors.Errorf("unknown storage type: %s", config.Type)
	}
	return nil
}

func setLogDefaults(lc *LogConfig) {
	lc.Level = _DEFAULT_LOG_LEVEL
	lc.File = _DEFAULT_LOG_FILE
	lc.Stderr = true
}

func readLogConfig(sec *ini.Section, lc *LogConfig) error {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "level" {
			lc.Level = key.MustString(lc.Level)
		} else if name == "file" {
			lc.File = key.String()
		} else if name == "stderr" {
			lc.Stderr = key.MustBool(lc.Stderr)
		} else {
			return errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func (cfg *CoolHomeConfig) String() string {
	return fmt.Sprintf("CoolHomeConfig<storage=%s slot=%s temperature_fires=%v>", cfg.Storage.Type, cfg.Storage.Slot, cfg.Heating.UseTemperatureBasedFires)
}
