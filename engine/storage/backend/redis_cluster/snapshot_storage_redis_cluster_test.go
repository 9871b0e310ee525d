package snapshotstoragerediscluster

import (
	"os"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
)

// set COOLHOME_TEST_REDIS_CLUSTER=host1:port1,host2:port2 to run against a live cluster
func TestRedisClusterSnapshotStorage(t *testing.T) {
	nodes := os.Getenv("COOLHOME_TEST_REDIS_CLUSTER")
	if nodes == "" {
		t.Skip("COOLHOME_TEST_REDIS_CLUSTER not set")
	}
	ss, err := OpenRedisCluster(strings.Split(nodes, ","))
	if err != nil {
		t.Fatal(err)
	}
	defer ss.Close()

	data, err := ss.Read("SpaceManagerTest", "missing")
	assert.Equal(t, nil, err)
	assert.T(t, data == nil, "missing slot should read nil")

	if err := ss.Write("SpaceManagerTest", "slot1", map[string]interface{}{"b": "2"}); err != nil {
		t.Fatal(err)
	}
	verifyData, err := ss.Read("SpaceManagerTest", "slot1")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "2", verifyData.(map[string]interface{})["b"])

	exists, err := ss.Exists("SpaceManagerTest", "slot1")
	assert.Equal(t, nil, err)
	assert.T(t, exists, "slot1 should exist")

	slots, err := ss.List("SpaceManagerTest")
	assert.Equal(t, nil, err)
	found := false
	for _, slot := range slots {
		found = found || slot == "slot1"
	}
	assert.T(t, found, slots)
}

func TestMergeSlots(t *testing.T) {
	merged := mergeSlots([][]string{
		{"default", "autosave"},
		{"autosave"}, // replica of the first node
		{"slot9"},
		nil,
	})
	assert.Equal(t, []string{"autosave", "default", "slot9"}, merged)
	assert.Equal(t, 0, len(mergeSlots(nil)))
}

func TestListUnreachableNode(t *testing.T) {
	ss := &redisClusterSnapshotStorage{startNodes: []string{"127.0.0.1:1"}}
	_, err := ss.List("SpaceManagerTest")
	assert.NotEqual(t, nil, err)
}
