package storage

import (
	"strconv"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/config"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/opmon"
	"github.com/coolhome/coolhome/engine/storage/backend/filesystem"
	"github.com/coolhome/coolhome/engine/storage/backend/mongodb"
	"github.com/coolhome/coolhome/engine/storage/backend/redis"
	"github.com/coolhome/coolhome/engine/storage/backend/redis_cluster"
	"github.com/coolhome/coolhome/engine/storage/backend/sql"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/pkg/errors"
)

// Open opens the snapshot storage backend described by cfg
func Open(cfg *config.StorageConfig) (storagecommon.SnapshotStorage, error) {
	switch cfg.Type {
	case "filesystem":
		return snapshotstoragefilesystem.OpenDirectory(cfg.Directory)
	case "redis":
		dbindex, err := strconv.Atoi(cfg.DB)
		if err != nil {
			return nil, errors.Wrap(err, "redis db index")
		}
		return snapshotstorageredis.OpenRedis(cfg.Url, dbindex)
	case "redis_cluster":
		return snapshotstoragerediscluster.OpenRedisCluster(cfg.StartNodes)
	case "mongodb":
		return snapshotstoragemongodb.OpenMongoDB(cfg.Url, cfg.DB)
	case "sql":
		return snapshotstoragesql.OpenSQL(cfg.Driver, cfg.Url)
	}
	return nil, errors.Errorf("unknown storage type: %s", cfg.Type)
}

// Store loads and saves the space manager snapshot in one slot of a backend
//
// A backend connection that reports EOF is dropped and reopened on the next call.
type Store struct {
	cfg    config.StorageConfig
	open   func(cfg *config.StorageConfig) (storagecommon.SnapshotStorage, error)
	engine storagecommon.SnapshotStorage
}

// NewStore creates a Store over the configured backend. The backend is opened lazily.
func NewStore(cfg *config.StorageConfig) *Store {
	return &Store{cfg: *cfg, open: Open}
}

// NewStoreWithEngine creates a Store over an already opened backend
func NewStoreWithEngine(engine storagecommon.SnapshotStorage, slot string) *Store {
	return &Store{
		cfg:    config.StorageConfig{Slot: slot},
		engine: engine,
		open: func(cfg *config.StorageConfig) (storagecommon.SnapshotStorage, error) {
			return nil, errors.New("storage engine closed")
		},
	}
}

// Slot returns the snapshot slot this store reads and writes
func (s *Store) Slot() string {
	return s.cfg.Slot
}

func (s *Store) assureStorageEngineReady() (err error) {
	if s.engine != nil {
		return
	}
	s.engine, err = s.open(&s.cfg)
	return
}

func (s *Store) dropOnEOF(err error) {
	if err != nil && s.engine != nil && s.engine.IsEOF(err) {
		chlog.Warnf("storage: connection lost, reopening on next call: %s", err)
		s.engine.Close()
		s.engine = nil
	}
}

// LoadSpaceManager reads the space manager snapshot. A missing slot returns a nil state.
func (s *Store) LoadSpaceManager() (*storagecommon.SpaceManagerState, error) {
	if err := s.assureStorageEngineReady(); err != nil {
		return nil, errors.Wrap(err, "storage engine is not ready")
	}
	if consts.DEBUG_SAVE_LOAD {
		chlog.Debugf("storage: LOADING %s %s ...", consts.SPACE_MANAGER_TYPE, s.cfg.Slot)
	}

	monop := opmon.StartOperation("storage.load")
	data, err := s.engine.Read(consts.SPACE_MANAGER_TYPE, s.cfg.Slot)
	monop.Finish(consts.STORAGE_LOAD_WARN_THRESHOLD)
	if err != nil {
		s.dropOnEOF(err)
		return nil, errors.Wrapf(err, "load %s %s", consts.SPACE_MANAGER_TYPE, s.cfg.Slot)
	}
	if data == nil {
		return nil, nil
	}
	return storagecommon.StateFromData(data)
}

// SaveSpaceManager writes the space manager snapshot, replacing the previous one in the slot
func (s *Store) SaveSpaceManager(state *storagecommon.SpaceManagerState) error {
	if err := s.assureStorageEngineReady(); err != nil {
		return errors.Wrap(err, "storage engine is not ready")
	}
	if consts.DEBUG_SAVE_LOAD {
		chlog.Debugf("storage: SAVING %s %s: %d zones, %d heaters", consts.SPACE_MANAGER_TYPE, s.cfg.Slot, len(state.Zones), len(state.HeaterEdges))
	}

	monop := opmon.StartOperation("storage.save")
	err := s.engine.Write(consts.SPACE_MANAGER_TYPE, s.cfg.Slot, state.ToData())
	monop.Finish(consts.STORAGE_SAVE_WARN_THRESHOLD)
	if err != nil {
		s.dropOnEOF(err)
		return errors.Wrapf(err, "save %s %s", consts.SPACE_MANAGER_TYPE, s.cfg.Slot)
	}
	return nil
}

// ListSlots returns every slot holding a space manager snapshot
func (s *Store) ListSlots() ([]string, error) {
	if err := s.assureStorageEngineReady(); err != nil {
		return nil, errors.Wrap(err, "storage engine is not ready")
	}
	return s.engine.List(consts.SPACE_MANAGER_TYPE)
}

// Close closes the backend
func (s *Store) Close() {
	if s.engine != nil {
		s.engine.Close()
		s.engine = nil
	}
}

