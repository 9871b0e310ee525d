package snapshotstoragesql

import (
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
)

func TestSQLSnapshotStorage(t *testing.T) {
	ss, err := OpenSQL("sqlite", filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer ss.Close()

	data, err := ss.Read("SpaceManager", "default")
	assert.Equal(t, nil, err)
	assert.T(t, data == nil, "missing slot should read nil")

	exists, err := ss.Exists("SpaceManager", "default")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, exists)

	if err := ss.Write("SpaceManager", "default", map[string]interface{}{"currentZoneName": "Cabin1"}); err != nil {
		t.Fatal(err)
	}
	// overwrite keeps a single row per slot
	if err := ss.Write("SpaceManager", "default", map[string]interface{}{"currentZoneName": "Cabin2"}); err != nil {
		t.Fatal(err)
	}
	if err := ss.Write("SpaceManager", "other", map[string]interface{}{}); err != nil {
		t.Fatal(err)
	}

	data, err = ss.Read("SpaceManager", "default")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Cabin2", data.(map[string]interface{})["currentZoneName"])

	slots, err := ss.List("SpaceManager")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"default", "other"}, slots)

	slots, err = ss.List("Unknown")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(slots))
}
