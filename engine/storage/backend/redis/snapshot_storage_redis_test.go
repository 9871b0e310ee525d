package snapshotstorageredis

import (
	"os"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/coolhome/coolhome/engine/chlog"
)

// set COOLHOME_TEST_REDIS=127.0.0.1:6379 to run against a live server
func openTestRedis(t *testing.T) *redisSnapshotStorage {
	host := os.Getenv("COOLHOME_TEST_REDIS")
	if host == "" {
		t.Skip("COOLHOME_TEST_REDIS not set")
	}
	ss, err := OpenRedis(host, 0)
	if err != nil {
		t.Fatal(err)
	}
	return ss.(*redisSnapshotStorage)
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "SpaceManager$default", SnapshotKey("SpaceManager", "default"))
}

func TestIsZeroCursor(t *testing.T) {
	assert.T(t, isZeroCursor([]byte("0")), "0 is the zero cursor")
	assert.T(t, !isZeroCursor([]byte("17")), "17 is not the zero cursor")
	assert.T(t, !isZeroCursor(nil), "nil is not a cursor")
}

func TestRedisSnapshotStorage(t *testing.T) {
	ss := openTestRedis(t)
	defer ss.Close()
	chlog.Infof("TestRedisSnapshotStorage: %v", ss)

	data, err := ss.Read("SpaceManagerTest", "missing")
	assert.Equal(t, nil, err)
	assert.T(t, data == nil, "missing slot should read nil")

	testData := map[string]interface{}{
		"b": "2",
		"c": true,
		"d": 1.11,
	}
	if err := ss.Write("SpaceManagerTest", "slot1", testData); err != nil {
		t.Fatal(err)
	}
	verifyData, err := ss.Read("SpaceManagerTest", "slot1")
	if err != nil {
		t.Fatal(err)
	}
	m := verifyData.(map[string]interface{})
	assert.Equal(t, "2", m["b"])
	assert.Equal(t, true, m["c"])
	assert.Equal(t, 1.11, m["d"])

	exists, err := ss.Exists("SpaceManagerTest", "slot1")
	assert.Equal(t, nil, err)
	assert.T(t, exists, "slot1 should exist")

	slots, err := ss.List("SpaceManagerTest")
	assert.Equal(t, nil, err)
	assert.T(t, len(slots) > 0, "no slots listed")
}
