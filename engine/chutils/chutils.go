package chutils

import "github.com/coolhome/coolhome/engine/chlog"

// RunPanicless calls a function panic-freely
//
// what names the call in the log line when f panics
func RunPanicless(what string, f func()) (paniced bool) {
	defer func() {
		err := recover()
		if err != nil {
			chlog.TraceError("%s panic: %v", what, err)
			paniced = true
		}
	}()

	f()
	return
}
