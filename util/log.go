package util

import "log"

var flagEnableTrace bool = false

// EnableTrace turns on trace logging for the main loop. Off by default;
// main enables it when GBANIM_TRACE=1.
func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}
