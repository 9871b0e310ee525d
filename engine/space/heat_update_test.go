package space

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestUpdateFire(t *testing.T) {
	env := newTestEnv()
	sm := env.sm
	fire := &fakeFire{guid: "F1", remaining: 600, tempIncrease: 20, maxIncrease: 80}
	stray := &fakeFire{guid: "F2", tempIncrease: 20, maxIncrease: 80}
	sm.EnterIndoorScene("Cabin1")
	sm.RegisterFire(fire)
	thermal := env.thermals["Cabin1"]

	sm.UpdateFire(fire)
	sm.UpdateFire(stray)
	assert.Equal(t, []float64{750}, thermal.heat)

	fire.tempIncrease = 0.5
	sm.UpdateFire(fire)
	assert.Equal(t, 1, len(thermal.heat))

	fire.tempIncrease = 20
	fire.maxIncrease = 0
	sm.UpdateFire(fire)
	assert.Equal(t, 1, len(thermal.heat))
}

// Live fire heat follows the temperature when temperature based fires are on,
// but shadow heaters keep the nominal fire power.
func TestTemperatureBasedFires(t *testing.T) {
	env := newTestEnv()
	env.heating.UseTemperatureBasedFires = true
	env.sm = env.newManager()
	env.sm.Init()
	sm := env.sm

	fire := &fakeFire{guid: "F1", remaining: 600, tempIncrease: 20, maxIncrease: 80}
	env.world.fires = []*fakeFire{fire}
	sm.EnterIndoorScene("Cabin1")
	sm.RegisterFire(fire)
	thermal := env.thermals["Cabin1"]

	sm.UpdateFire(fire)
	assert.Equal(t, []float64{800}, thermal.heat)

	sm.LeaveIndoor()
	assert.Equal(t, []shadowCall{{FIRE, "F1", 3000, 600}}, thermal.shadows)
}

func TestUpdateGearItems(t *testing.T) {
	env := newTestEnv()
	sm := env.sm
	flare := newFlare(1, true, 1, 10)
	torch := newTorch(2, true, 0, 60)
	lamp := newLamp(3, true, 1, 1)
	sm.EnterIndoorScene("Cabin1")
	sm.TryRegisterGearItem(flare.gear)
	sm.TryRegisterGearItem(torch.gear)
	sm.TryRegisterGearItem(lamp.gear)
	thermal := env.thermals["Cabin1"]

	sm.UpdateFlare(flare)
	sm.UpdateTorch(torch)
	sm.UpdateLamp(lamp)
	assert.Equal(t, []float64{1000, 800, 400}, thermal.heat)

	flare.burning = false
	torch.burning = false
	lamp.on = false
	sm.UpdateFlare(flare)
	sm.UpdateTorch(torch)
	sm.UpdateLamp(lamp)
	sm.UpdateLamp(newLamp(4, true, 1, 1))
	assert.Equal(t, 3, len(thermal.heat))
}
