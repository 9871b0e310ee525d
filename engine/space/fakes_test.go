package space

import (
	"github.com/coolhome/coolhome/engine/config"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/coolhome/coolhome/engine/world"
)

type shadowCall struct {
	kind     HeaterKind
	id       string
	power    float64
	duration float64
}

type fakeThermal struct {
	name     string
	profile  string
	created  bool
	loaded   Blob
	heat     []float64
	shadows  []shadowCall
	removals int
}

func (t *fakeThermal) OnCreate() { t.created = true }
func (t *fakeThermal) Heat(power float64) {
	t.heat = append(t.heat, power)
}
func (t *fakeThermal) AddShadowHeater(kind HeaterKind, id string, power float64, durationSeconds float64) {
	t.shadows = append(t.shadows, shadowCall{kind, id, power, durationSeconds})
}
func (t *fakeThermal) RemoveShadowHeaters() {
	t.shadows = nil
	t.removals++
}
func (t *fakeThermal) LoadData(data Blob) { t.loaded = data }
func (t *fakeThermal) SaveData() Blob {
	return Blob{"profile": t.profile, "ticks": len(t.heat)}
}

type fakeFire struct {
	guid         string
	pos          world.Vector3
	remaining    float64
	tempIncrease float64
	maxIncrease  float64
	assigned     int
}

func (f *fakeFire) GUID() (string, bool) { return f.guid, f.guid != "" }
func (f *fakeFire) AssignGUID(guid string) {
	f.guid = guid
	f.assigned++
}
func (f *fakeFire) Name() string                      { return "INTERACTIVE_FireBarrel" }
func (f *fakeFire) Position() world.Vector3           { return f.pos }
func (f *fakeFire) RemainingLifetimeSeconds() float64 { return f.remaining }
func (f *fakeFire) TempIncrease() float64             { return f.tempIncrease }
func (f *fakeFire) MaxTempIncrease() float64          { return f.maxIncrease }

type fakeGear struct {
	id    int64
	flare *fakeFlare
	torch *fakeTorch
	lamp  *fakeLamp
}

func (g *fakeGear) InstanceID() int64 { return g.id }
func (g *fakeGear) Flare() (world.Flare, bool) {
	if g.flare == nil {
		return nil, false
	}
	return g.flare, true
}
func (g *fakeGear) Torch() (world.Torch, bool) {
	if g.torch == nil {
		return nil, false
	}
	return g.torch, true
}
func (g *fakeGear) Lamp() (world.Lamp, bool) {
	if g.lamp == nil {
		return nil, false
	}
	return g.lamp, true
}

type fakeFlare struct {
	gear     *fakeGear
	burning  bool
	left     float64
	lifetime float64
}

func (f *fakeFlare) Gear() world.GearItem                 { return f.gear }
func (f *fakeFlare) IsBurning() bool                      { return f.burning }
func (f *fakeFlare) NormalizedBurnTimeLeft() float64      { return f.left }
func (f *fakeFlare) ModifiedBurnLifetimeMinutes() float64 { return f.lifetime }

type fakeTorch struct {
	gear     *fakeGear
	burning  bool
	progress float64
	lifetime float64
}

func (t *fakeTorch) Gear() world.GearItem                 { return t.gear }
func (t *fakeTorch) IsBurning() bool                      { return t.burning }
func (t *fakeTorch) BurnProgress() float64                { return t.progress }
func (t *fakeTorch) ModifiedBurnLifetimeMinutes() float64 { return t.lifetime }

type fakeLamp struct {
	gear *fakeGear
	on   bool
	fuel float64
	rate float64
}

func (l *fakeLamp) Gear() world.GearItem                   { return l.gear }
func (l *fakeLamp) IsOn() bool                             { return l.on }
func (l *fakeLamp) CurrentFuelLiters() float64             { return l.fuel }
func (l *fakeLamp) ModifiedFuelBurnLitersPerHour() float64 { return l.rate }

func newFlare(id int64, burning bool, left float64, lifetimeMinutes float64) *fakeFlare {
	gear := &fakeGear{id: id}
	gear.flare = &fakeFlare{gear: gear, burning: burning, left: left, lifetime: lifetimeMinutes}
	return gear.flare
}

func newTorch(id int64, burning bool, progress float64, lifetimeMinutes float64) *fakeTorch {
	gear := &fakeGear{id: id}
	gear.torch = &fakeTorch{gear: gear, burning: burning, progress: progress, lifetime: lifetimeMinutes}
	return gear.torch
}

func newLamp(id int64, on bool, fuel float64, rate float64) *fakeLamp {
	gear := &fakeGear{id: id}
	gear.lamp = &fakeLamp{gear: gear, on: on, fuel: fuel, rate: rate}
	return gear.lamp
}

type fakeTrigger string

func (t fakeTrigger) GUID() string { return string(t) }

type fakeDoor struct {
	parentName string
	parentPos  world.Vector3
}

func (d fakeDoor) ParentName() string            { return d.parentName }
func (d fakeDoor) ParentPosition() world.Vector3 { return d.parentPos }

type fakeWorld struct {
	fires    []*fakeFire
	flares   []*fakeFlare
	torches  []*fakeTorch
	lamps    []*fakeLamp
	triggers []string
	inHands  world.GearItem
}

func (w *fakeWorld) Fires() []world.Fire {
	res := make([]world.Fire, 0, len(w.fires))
	for _, f := range w.fires {
		res = append(res, f)
	}
	return res
}

func (w *fakeWorld) Flares() []world.Flare {
	res := make([]world.Flare, 0, len(w.flares))
	for _, f := range w.flares {
		res = append(res, f)
	}
	return res
}

func (w *fakeWorld) Torches() []world.Torch {
	res := make([]world.Torch, 0, len(w.torches))
	for _, t := range w.torches {
		res = append(res, t)
	}
	return res
}

func (w *fakeWorld) Lamps() []world.Lamp {
	res := make([]world.Lamp, 0, len(w.lamps))
	for _, l := range w.lamps {
		res = append(res, l)
	}
	return res
}

func (w *fakeWorld) IndoorTriggers() []world.IndoorTrigger {
	res := make([]world.IndoorTrigger, 0, len(w.triggers))
	for _, t := range w.triggers {
		res = append(res, fakeTrigger(t))
	}
	return res
}

func (w *fakeWorld) ItemInHands() (world.GearItem, bool) {
	return w.inHands, w.inHands != nil
}

type memStore struct {
	state   *storagecommon.SpaceManagerState
	loadErr error
	saves   int
}

func (s *memStore) LoadSpaceManager() (*storagecommon.SpaceManagerState, error) {
	return s.state, s.loadErr
}

func (s *memStore) SaveSpaceManager(state *storagecommon.SpaceManagerState) error {
	s.state = state
	s.saves++
	return nil
}

type fakeAurora struct {
	data Blob
}

func (a *fakeAurora) LoadData(data Blob) { a.data = data }
func (a *fakeAurora) SaveData() Blob     { return a.data }

type testEnv struct {
	world    *fakeWorld
	store    *memStore
	thermals map[string]*fakeThermal
	heating  *config.HeatingConfig
	sm       *SpaceManager
}

func newTestEnv() *testEnv {
	env := &testEnv{
		world:    &fakeWorld{},
		store:    &memStore{},
		thermals: map[string]*fakeThermal{},
		heating:  &config.Default().Heating,
	}
	env.sm = env.newManager()
	if err := env.sm.Init(); err != nil {
		panic(err)
	}
	return env
}

func (env *testEnv) newManager() *SpaceManager {
	return NewSpaceManager(Options{
		World: env.world,
		Store: env.store,
		NewThermal: func(name string, profile string) Thermal {
			t := &fakeThermal{name: name, profile: profile}
			env.thermals[name] = t
			return t
		},
		Heating: env.heating,
	})
}
