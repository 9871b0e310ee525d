package event

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestEmitByType(t *testing.T) {
	h := NewHub()
	var scenes []string
	exits := 0
	Subscribe(h, func(ev IndoorSceneEnter) {
		scenes = append(scenes, ev.SceneName)
	})
	Subscribe(h, func(ev IndoorSceneExit) {
		exits++
	})

	Emit(h, IndoorSceneEnter{SceneName: "CoastalHouseA"})
	Emit(h, IndoorSceneEnter{SceneName: "FarmHouseB"})
	Emit(h, IndoorSceneExit{})
	Emit(h, OutdoorSceneEnter{}) // no handler

	assert.Equal(t, []string{"CoastalHouseA", "FarmHouseB"}, scenes)
	assert.Equal(t, 1, exits)
	assert.Equal(t, 1, HandlerCount[IndoorSceneEnter](h))
	assert.Equal(t, 0, HandlerCount[OutdoorSceneEnter](h))
}

func TestHandlersRunInOrder(t *testing.T) {
	h := NewHub()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		Subscribe(h, func(VehicleExit) {
			order = append(order, i)
		})
	}
	Emit(h, VehicleExit{})
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestPanickingHandlerIsIsolated(t *testing.T) {
	h := NewHub()
	called := false
	Subscribe(h, func(SaveRequested) {
		panic("boom")
	})
	Subscribe(h, func(SaveRequested) {
		called = true
	})
	Emit(h, SaveRequested{})
	assert.T(t, called, "second handler should still run")
}
