package space

import (
	"github.com/coolhome/coolhome/engine/event"
)

// Subscribe connects the space manager to the host lifecycle events of hub
func (sm *SpaceManager) Subscribe(hub *event.Hub) {
	event.Subscribe(hub, func(ev event.IndoorTriggerEnter) { sm.EnterIndoor(ev.Trigger) })
	event.Subscribe(hub, func(event.IndoorTriggerExit) { sm.Leave() })
	event.Subscribe(hub, func(ev event.IndoorSceneEnter) { sm.EnterIndoorScene(ev.SceneName) })
	event.Subscribe(hub, func(event.IndoorSceneExit) { sm.LeaveIndoor() })
	event.Subscribe(hub, func(event.OutdoorSceneEnter) { sm.EnterOutdoor() })
	event.Subscribe(hub, func(event.OutdoorSceneExit) { sm.LeaveOutdoor() })
	event.Subscribe(hub, func(ev event.VehicleEnter) { sm.EnterVehicle(ev.Door) })
	event.Subscribe(hub, func(event.VehicleExit) { sm.LeaveVehicle() })

	event.Subscribe(hub, func(ev event.FireTurnedOn) { sm.OnFireTurnOn(ev.Fire) })
	event.Subscribe(hub, func(ev event.FireTurnedOff) { sm.OnFireTurnOff(ev.Fire) })
	event.Subscribe(hub, func(ev event.ItemIgnited) { sm.OnItemIgnite(ev.Item) })
	event.Subscribe(hub, func(ev event.ItemExtinguished) { sm.OnItemExtinguish(ev.Item) })
	event.Subscribe(hub, func(ev event.ItemThrown) { sm.OnItemThrow(ev.Item) })
	event.Subscribe(hub, func(ev event.ItemDropped) { sm.OnItemDrop(ev.Item) })
	event.Subscribe(hub, func(ev event.ItemPickedUp) { sm.OnItemPickup(ev.Item) })
	event.Subscribe(hub, func(ev event.PlacementStarted) { sm.StartPlacement(ev.Item) })
	event.Subscribe(hub, func(event.PlacementCancelled) { sm.CancelPlacement() })
	event.Subscribe(hub, func(event.PlacementCommitted) { sm.CommitPlacement() })

	event.Subscribe(hub, func(ev event.FireTick) { sm.UpdateFire(ev.Fire) })
	event.Subscribe(hub, func(ev event.FlareTick) { sm.UpdateFlare(ev.Flare) })
	event.Subscribe(hub, func(ev event.TorchTick) { sm.UpdateTorch(ev.Torch) })
	event.Subscribe(hub, func(ev event.LampTick) { sm.UpdateLamp(ev.Lamp) })

	event.Subscribe(hub, func(event.SaveRequested) { sm.SaveData() })
	event.Subscribe(hub, func(event.LoadRequested) { sm.LoadData() })
}
