package snapshotstoragesql

import (
	"database/sql"
	"io"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/codec"
	"github.com/coolhome/coolhome/engine/consts"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/pkg/errors"

	// sqlite driver registered as "sqlite"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	type_name TEXT NOT NULL,
	slot TEXT NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (type_name, slot)
)`

type sqlSnapshotStorage struct {
	db *sql.DB
}

// OpenSQL opens a database/sql backed snapshot storage and creates the snapshot table if needed
func OpenSQL(driver string, url string) (storagecommon.SnapshotStorage, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, errors.Wrap(err, "open sql")
	}
	if driver == "sqlite" {
		// one writer at a time on a sqlite file
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create snapshots table")
	}
	chlog.Infof("SQL snapshot storage opened: driver=%s", driver)
	return &sqlSnapshotStorage{db: db}, nil
}

func (ss *sqlSnapshotStorage) Write(typeName string, slot string, data interface{}) error {
	payload, err := codec.SNAPSHOT_PACKER.PackMsg(data, nil)
	if err != nil {
		return errors.Wrap(err, "pack snapshot")
	}
	if consts.DEBUG_SAVE_LOAD {
		chlog.Debugf("Saving %s/%s: %d bytes", typeName, slot, len(payload))
	}
	_, err = ss.db.Exec(`INSERT INTO snapshots(type_name, slot, payload) VALUES(?, ?, ?)
		ON CONFLICT(type_name, slot) DO UPDATE SET payload = excluded.payload`, typeName, slot, payload)
	return errors.Wrap(err, "write snapshot")
}

func (ss *sqlSnapshotStorage) Read(typeName string, slot string) (interface{}, error) {
	var payload []byte
	err := ss.db.QueryRow(`SELECT payload FROM snapshots WHERE type_name = ? AND slot = ?`, typeName, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}

	var data map[string]interface{}
	if err := codec.SNAPSHOT_PACKER.UnpackMsg(payload, &data); err != nil {
		return nil, errors.Wrap(err, "unpack snapshot")
	}
	return data, nil
}

func (ss *sqlSnapshotStorage) List(typeName string) ([]string, error) {
	rows, err := ss.db.Query(`SELECT slot FROM snapshots WHERE type_name = ? ORDER BY slot`, typeName)
	if err != nil {
		return nil, errors.Wrap(err, "list snapshots")
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (ss *sqlSnapshotStorage) Exists(typeName string, slot string) (bool, error) {
	var n int
	err := ss.db.QueryRow(`SELECT COUNT(*) FROM snapshots WHERE type_name = ? AND slot = ?`, typeName, slot).Scan(&n)
	return n > 0, err
}

func (ss *sqlSnapshotStorage) Close() {
	if err := ss.db.Close(); err != nil {
		chlog.Errorf("close sql snapshot storage failed: %v", err)
	}
}

func (ss *sqlSnapshotStorage) IsEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF || errors.Cause(err) == sql.ErrConnDone
}
