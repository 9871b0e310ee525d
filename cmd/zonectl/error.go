package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coolhome/coolhome/engine/chlog"
)

const (
	exitUsage   = 1
	exitFailure = 2
)

var (
	osExit = os.Exit
	exit   = osExit
)

// showMsg prints progress to stderr, stdout is kept for command output
func showMsg(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "> "+format+"\n", a...)
}

// usageAndQuit reports a command line mistake and prints the usage
func usageAndQuit(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "! "+format+"\n", a...)
	flag.Usage()
	exit(exitUsage)
}

// failIf logs err to the configured log outputs and quits
func failIf(err error, what string) {
	if err == nil {
		return
	}
	chlog.Errorf("zonectl: %s failed: %+v", what, err)
	chlog.Sync()
	fmt.Fprintf(os.Stderr, "! %s failed: %v\n", what, err)
	exit(exitFailure)
}
