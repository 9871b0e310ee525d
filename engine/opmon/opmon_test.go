package opmon

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bmizerany/assert"
)

func TestOperation(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		op := StartOperation("storage.Save")
		op.Finish(time.Hour)
	}
	StartOperation("storage.Load").Finish(time.Hour)

	infos := Snapshot()
	assert.Equal(t, uint64(3), infos["storage.Save"].Count)
	assert.Equal(t, uint64(1), infos["storage.Load"].Count)
	assert.T(t, infos["storage.Save"].MaxDuration >= infos["storage.Save"].Avg())
}

func TestDump(t *testing.T) {
	Reset()
	StartOperation("b").Finish(time.Hour)
	StartOperation("a").Finish(time.Hour)

	var buf bytes.Buffer
	Dump(&buf)
	out := buf.String()
	assert.T(t, strings.Index(out, "a ") < strings.Index(out, "b "), "dump not sorted:", out)
	assert.Equal(t, 0, len(Snapshot()))
	assert.Equal(t, time.Duration(0), OpInfo{}.Avg())
}
