package snapshotstorageredis

import (
	"io"

	"github.com/coolhome/coolhome/engine/codec"
	. "github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/garyburd/redigo/redis"
	"github.com/pkg/errors"
)

var (
	dataPacker = codec.SNAPSHOT_PACKER
)

type redisSnapshotStorage struct {
	c redis.Conn
}

// OpenRedis opens redis as snapshot storage
func OpenRedis(host string, dbindex int) (SnapshotStorage, error) {
	c, err := redis.Dial("tcp", host)
	if err != nil {
		return nil, errors.Wrap(err, "redis dail failed")
	}

	if _, err := c.Do("SELECT", dbindex); err != nil {
		c.Close()
		return nil, errors.Wrap(err, "redis select db failed")
	}

	return &redisSnapshotStorage{
		c: c,
	}, nil
}

// SnapshotKey is the redis key of a snapshot slot
func SnapshotKey(typeName string, slot string) string {
	return typeName + "$" + slot
}

func packData(data interface{}) (b []byte, err error) {
	b, err = dataPacker.PackMsg(data, b)
	return
}

func unpackData(b []byte) (interface{}, error) {
	var data map[string]interface{}
	if err := dataPacker.UnpackMsg(b, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (ss *redisSnapshotStorage) List(typeName string) ([]string, error) {
	return ScanSlots(ss.c, typeName)
}

// ScanSlots iterates SCAN to collect every slot of typeName
func ScanSlots(c interface {
	Do(cmd string, args ...interface{}) (interface{}, error)
}, typeName string) ([]string, error) {
	keyMatch := typeName + "$*"
	r, err := redis.Values(c.Do("SCAN", "0", "MATCH", keyMatch, "COUNT", 10000))
	if err != nil {
		return nil, err
	}
	var slots []string
	prefixLen := len(typeName) + 1
	for {
		nextCursor := r[0]
		keys, err := redis.Strings(r[1], nil)
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			slots = append(slots, key[prefixLen:])
		}

		if isZeroCursor(nextCursor) {
			break
		}
		r, err = redis.Values(c.Do("SCAN", nextCursor, "MATCH", keyMatch, "COUNT", 10000))
		if err != nil {
			return nil, err
		}
	}
	return slots, nil
}

func isZeroCursor(c interface{}) bool {
	b, ok := c.([]byte)
	return ok && string(b) == "0"
}

func (ss *redisSnapshotStorage) Write(typeName string, slot string, data interface{}) error {
	b, err := packData(data)
	if err != nil {
		return err
	}

	_, err = ss.c.Do("SET", SnapshotKey(typeName, slot), b)
	return err
}

func (ss *redisSnapshotStorage) Read(typeName string, slot string) (interface{}, error) {
	b, err := redis.Bytes(ss.c.Do("GET", SnapshotKey(typeName, slot)))
	if err == redis.ErrNil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return unpackData(b)
}

func (ss *redisSnapshotStorage) Exists(typeName string, slot string) (bool, error) {
	return redis.Bool(ss.c.Do("EXISTS", SnapshotKey(typeName, slot)))
}

func (ss *redisSnapshotStorage) Close() {
	ss.c.Close()
}

func (ss *redisSnapshotStorage) IsEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
