package snapshotstoragerediscluster

import (
	"io"
	"sort"
	"time"

	rediscluster "github.com/chasex/redis-go-cluster"
	"github.com/coolhome/coolhome/engine/codec"
	snapshotstorageredis "github.com/coolhome/coolhome/engine/storage/backend/redis"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/garyburd/redigo/redis"
	"github.com/pkg/errors"
)

var (
	dataPacker = codec.SNAPSHOT_PACKER
)

type redisClusterSnapshotStorage struct {
	c          *rediscluster.Cluster
	startNodes []string
}

// OpenRedisCluster opens redis cluster as snapshot storage
func OpenRedisCluster(startNodes []string) (storagecommon.SnapshotStorage, error) {
	c, err := rediscluster.NewCluster(&rediscluster.Options{
		StartNodes:   startNodes,
		ConnTimeout:  10 * time.Second, // Connection timeout
		ReadTimeout:  60 * time.Second, // Read timeout
		WriteTimeout: 60 * time.Second, // Write timeout
		KeepAlive:    1,                // Maximum keep alive connecion in each node
		AliveTime:    10 * time.Minute, // Keep alive timeout
	})

	if err != nil {
		return nil, errors.Wrap(err, "connect redis cluster failed")
	}

	return &redisClusterSnapshotStorage{
		c:          c,
		startNodes: startNodes,
	}, nil
}

// List scans every start node, since SCAN only walks the keys of the node it reaches.
// Slots held only by nodes missing from start_nodes are not listed.
func (ss *redisClusterSnapshotStorage) List(typeName string) ([]string, error) {
	var perNode [][]string
	for _, node := range ss.startNodes {
		slots, err := scanNode(node, typeName)
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", node)
		}
		perNode = append(perNode, slots)
	}
	return mergeSlots(perNode), nil
}

func scanNode(node string, typeName string) ([]string, error) {
	c, err := redis.Dial("tcp", node)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return snapshotstorageredis.ScanSlots(c, typeName)
}

// mergeSlots merges the slots found on each node; replicas report the same keys as their master
func mergeSlots(perNode [][]string) []string {
	seen := map[string]struct{}{}
	var slots []string
	for _, nodeSlots := range perNode {
		for _, slot := range nodeSlots {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			slots = append(slots, slot)
		}
	}
	sort.Strings(slots)
	return slots
}

func (ss *redisClusterSnapshotStorage) Write(typeName string, slot string, data interface{}) error {
	b, err := dataPacker.PackMsg(data, nil)
	if err != nil {
		return err
	}

	_, err = ss.c.Do("SET", snapshotstorageredis.SnapshotKey(typeName, slot), b)
	return err
}

func (ss *redisClusterSnapshotStorage) Read(typeName string, slot string) (interface{}, error) {
	b, err := redis.Bytes(ss.c.Do("GET", snapshotstorageredis.SnapshotKey(typeName, slot)))
	if err == redis.ErrNil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var data map[string]interface{}
	if err = dataPacker.UnpackMsg(b, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (ss *redisClusterSnapshotStorage) Exists(typeName string, slot string) (bool, error) {
	return redis.Bool(ss.c.Do("EXISTS", snapshotstorageredis.SnapshotKey(typeName, slot)))
}

func (ss *redisClusterSnapshotStorage) Close() {
	ss.c.Close()
}

func (ss *redisClusterSnapshotStorage) IsEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
