package chlog

import (
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
)

func TestChLog(t *testing.T) {
	SetSource("chlog_test")
	SetOutput([]string{"stderr", filepath.Join(t.TempDir(), "chlog_test.log")})
	SetLevel(DebugLevel)

	if lv := ParseLevel("debug"); lv != DebugLevel {
		t.Fail()
	}
	if lv := ParseLevel("info"); lv != InfoLevel {
		t.Fail()
	}
	if lv := ParseLevel("warn"); lv != WarnLevel {
		t.Fail()
	}
	if lv := ParseLevel("warning"); lv != WarnLevel {
		t.Fail()
	}
	if lv := ParseLevel("error"); lv != ErrorLevel {
		t.Fail()
	}
	if lv := ParseLevel("panic"); lv != PanicLevel {
		t.Fail()
	}
	if lv := ParseLevel("fatal"); lv != FatalLevel {
		t.Fail()
	}

	Debugf("this is a debug %d", 1)
	SetLevel(InfoLevel)
	assert.Equal(t, InfoLevel, GetLevel())
	Debugf("SHOULD NOT SEE THIS!")
	Infof("this is an info %d", 2)
	Warnf("this is a warning %d", 3)
	TraceError("this is a trace error %d", 4)
	func() {
		defer func() {
			_ = recover()
		}()
		Panicf("this is a panic %d", 4)
	}()
	Sync()
}

func TestSetup(t *testing.T) {
	Setup("warn", "", false)
	assert.Equal(t, WarnLevel, GetLevel())
	Setup("debug", filepath.Join(t.TempDir(), "setup.log"), true)
	assert.Equal(t, DebugLevel, GetLevel())
}
