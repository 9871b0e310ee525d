package snapshotstoragefilesystem

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/coolhome/coolhome/engine/chlog"
)

func TestFileSystemSnapshotStorage(t *testing.T) {
	ss, err := OpenDirectory(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	chlog.Infof("TestOpenDirectory: %v", ss)

	data, err := ss.Read("SpaceManager", "slot1")
	if err != nil {
		t.Error(err)
	}
	if data != nil {
		t.Errorf("should be nil")
	}
	exists, err := ss.Exists("SpaceManager", "slot1")
	assert.Equal(t, nil, err)
	assert.T(t, !exists, "slot1 should not exist yet")

	testData := map[string]interface{}{
		"a": 1,
		"b": "2",
		"c": true,
		"d": 1.11,
	}
	if err := ss.Write("SpaceManager", "slot1", testData); err != nil {
		t.Fatal(err)
	}

	verifyData, err := ss.Read("SpaceManager", "slot1")
	if err != nil {
		t.Fatal(err)
	}
	m := verifyData.(map[string]interface{})
	assert.Equal(t, float64(1), m["a"])
	assert.Equal(t, "2", m["b"])
	assert.Equal(t, true, m["c"])
	assert.Equal(t, 1.11, m["d"])

	exists, err = ss.Exists("SpaceManager", "slot1")
	assert.Equal(t, nil, err)
	assert.T(t, exists, "slot1 should exist")

	if err := ss.Write("SpaceManager", "other/slot", testData); err != nil {
		t.Fatal(err)
	}
	slots, err := ss.List("SpaceManager")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(slots))
	t.Logf("Found slots saved: %v", slots)
}
