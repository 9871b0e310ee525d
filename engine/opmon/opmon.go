package opmon

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/coolhome/coolhome/engine/chlog"
)

var (
	operationAllocPool = sync.Pool{
		New: func() interface{} {
			return &Operation{}
		},
	}

	monitor = newMonitor()
)

// OpInfo is the accumulated timing of one operation name
type OpInfo struct {
	Count         uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// Avg returns the average duration
func (info OpInfo) Avg() time.Duration {
	if info.Count == 0 {
		return 0
	}
	return info.TotalDuration / time.Duration(info.Count)
}

type _Monitor struct {
	sync.Mutex
	opInfos map[string]*OpInfo
}

func newMonitor() *_Monitor {
	return &_Monitor{
		opInfos: map[string]*OpInfo{},
	}
}

func (monitor *_Monitor) record(opname string, duration time.Duration) {
	monitor.Lock()
	info := monitor.opInfos[opname]
	if info == nil {
		info = &OpInfo{}
		monitor.opInfos[opname] = info
	}
	info.Count += 1
	info.TotalDuration += duration
	if duration > info.MaxDuration {
		info.MaxDuration = duration
	}
	monitor.Unlock()
}

// Snapshot returns a copy of the recorded timings
func Snapshot() map[string]OpInfo {
	monitor.Lock()
	defer monitor.Unlock()
	res := make(map[string]OpInfo, len(monitor.opInfos))
	for name, info := range monitor.opInfos {
		res[name] = *info
	}
	return res
}

// Reset drops all recorded timings
func Reset() {
	monitor.Lock()
	monitor.opInfos = map[string]*OpInfo{}
	monitor.Unlock()
}

// Dump writes recorded timings sorted by operation name, then clears them
func Dump(w io.Writer) {
	infos := Snapshot()
	Reset()

	names := make([]string, 0, len(infos))
	for name := range infos {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprint(w, "=====================================================================================\n")
	for _, name := range names {
		info := infos[name]
		fmt.Fprintf(w, "%-30sx%-10d AVG %-10s MAX %-10s\n", name, info.Count, info.Avg(), info.MaxDuration)
	}
}

// Operation is the type of operation to be monitored
type Operation struct {
	name      string
	startTime time.Time
}

// StartOperation creates a new operation
func StartOperation(operationName string) *Operation {
	op := operationAllocPool.Get().(*Operation)
	op.name = operationName
	op.startTime = time.Now()
	return op
}

// Finish finishes the operation and records the duration of operation
func (op *Operation) Finish(warnThreshold time.Duration) {
	takeTime := time.Since(op.startTime)
	monitor.record(op.name, takeTime)
	if takeTime >= warnThreshold {
		chlog.Warnf("opmon: operation %s takes %s > %s", op.name, takeTime, warnThreshold)
	}
	operationAllocPool.Put(op)
}
