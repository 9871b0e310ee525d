package main

import (
	"fmt"
	"io"

	"github.com/coolhome/coolhome/engine/codec"
	"github.com/coolhome/coolhome/engine/space"
	"github.com/coolhome/coolhome/engine/storage"
	"github.com/pkg/errors"
)

// dump prints the snapshot as indented JSON
func dump(store *storage.Store, w io.Writer) error {
	state, err := store.LoadSpaceManager()
	if err != nil {
		return err
	}
	if state == nil {
		return errors.Errorf("slot %s is empty", store.Slot())
	}

	data, err := codec.JSONPacker{}.PackMsg(state.ToData(), nil)
	if err != nil {
		return errors.Wrap(err, "pack json")
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// listZones prints every zone with its heater count, marking the current one
func listZones(store *storage.Store, w io.Writer) error {
	sm, err := openSpaceManager(store)
	if err != nil {
		return err
	}

	for _, name := range sm.Zones().Names() {
		zone, _ := sm.Zones().Get(name)
		mark := " "
		if zone.IsCurrent() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-40s %d heaters\n", mark, name, sm.Heaters().Count(name))
	}
	fmt.Fprintf(w, "%d zones, %d heaters\n", sm.Zones().Len(), sm.Heaters().Len())
	return nil
}

// prune removes the zones that own no heaters and saves the snapshot back
func prune(store *storage.Store, w io.Writer) error {
	sm, err := openSpaceManager(store)
	if err != nil {
		return err
	}

	removed := sm.PruneIrrelevantSpaces()
	for _, name := range removed {
		fmt.Fprintf(w, "removed %s\n", name)
	}
	if len(removed) == 0 {
		fmt.Fprintf(w, "nothing to prune\n")
		return nil
	}
	return sm.SaveData()
}

func listSlots(store *storage.Store, w io.Writer) error {
	slots, err := store.ListSlots()
	if err != nil {
		return err
	}
	for _, slot := range slots {
		fmt.Fprintln(w, slot)
	}
	return nil
}

func openSpaceManager(store *storage.Store) (*space.SpaceManager, error) {
	sm := space.NewSpaceManager(space.Options{
		World:      offlineWorld{},
		Store:      store,
		NewThermal: newSavedThermal,
		Aurora:     &savedAurora{},
	})
	if err := sm.Init(); err != nil {
		return nil, err
	}
	return sm, nil
}
