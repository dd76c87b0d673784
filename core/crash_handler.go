package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// emergencyReset leaves the alternate screen, resets attributes and shows the cursor
const emergencyReset = "\x1b[0m\x1b[?25h\x1b[?1049l"

var crashFinalizer atomic.Pointer[func()]

// SetCrashFinalizer registers fn to restore the terminal before a crash report
// nil clears it
func SetCrashFinalizer(fn func()) {
	if fn == nil {
		crashFinalizer.Store(nil)
		return
	}
	crashFinalizer.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashFinalizer.Load(); fn != nil {
		(*fn)()
	} else {
		fmt.Fprint(os.Stdout, emergencyReset)
	}

	// Raw mode may still be on, \r\n keeps the trace readable
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
