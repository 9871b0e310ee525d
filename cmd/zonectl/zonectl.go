package main

import (
	"flag"
	"os"
	"strings"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/config"
	"github.com/coolhome/coolhome/engine/opmon"
	"github.com/coolhome/coolhome/engine/storage"
)

var args struct {
	configFile string
	slot       string
}

func parseArgs() {
	flag.StringVar(&args.configFile, "configfile", "coolhome.ini", "set config file path")
	flag.StringVar(&args.slot, "slot", "", "override the snapshot slot")
	flag.Usage = func() {
		showMsg("usage: zonectl [-configfile coolhome.ini] [-slot name] dump|zones|prune|slots")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func main() {
	parseArgs()
	cmdArgs := flag.Args()
	showMsg("arguments: %s", strings.Join(cmdArgs, " "))

	if len(cmdArgs) != 1 {
		usageAndQuit("should specify one command")
	}

	cfg, err := config.Load(args.configFile)
	failIf(err, "read config")
	chlog.Setup(cfg.Log.Level, cfg.Log.File, cfg.Log.Stderr)
	chlog.SetSource("zonectl")
	defer chlog.Sync()

	if args.slot != "" {
		cfg.Storage.Slot = args.slot
	}
	store := storage.NewStore(&cfg.Storage)

	cmd := cmdArgs[0]
	if cmd == "dump" {
		err = dump(store, os.Stdout)
	} else if cmd == "zones" {
		err = listZones(store, os.Stdout)
	} else if cmd == "prune" {
		err = prune(store, os.Stdout)
	} else if cmd == "slots" {
		err = listSlots(store, os.Stdout)
	} else {
		store.Close()
		usageAndQuit("unknown command: %s", cmd)
	}
	store.Close()
	failIf(err, cmd)
	opmon.Dump(os.Stderr)
}
