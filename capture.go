// capture.go - the trace capture service and its environment opt-in.
//
// Capture is gated by the environment so that it is never paid by default:
//
//	ANYERR_LIB_BACKTRACE  takes precedence when set
//	ANYERR_BACKTRACE      consulted otherwise
//
// "0" (or unset) disables capture; "full" keeps runtime frames; any other
// value enables capture. The environment is read once per process.
package anyerr

import (
	"os"
	"sync"
	"sync/atomic"
)

//go:generate mockgen -destination=mock/mock_capturer.go -package=anyerrmock github.com/xgx-io/xgx-anyerr Capturer

// Capturer produces stack traces for new error chains.
//
// skip is the number of frames to omit above the caller of Capture; skip=0
// makes the caller of Capture the first recorded frame. Implementations must
// never return nil: report DisabledBacktrace() when capture is off.
type Capturer interface {
	Capture(skip int) *Backtrace
}

// Environment variables consulted by the default capturer.
const (
	EnvLibBacktrace = "ANYERR_LIB_BACKTRACE"
	EnvBacktrace    = "ANYERR_BACKTRACE"
)

type backtraceMode int

const (
	backtraceOff backtraceMode = iota
	backtraceOn
	backtraceFull
)

// parseBacktraceMode applies the precedence rules to raw lookups.
func parseBacktraceMode(lookup func(string) (string, bool)) backtraceMode {
	if v, ok := lookup(EnvLibBacktrace); ok {
		return modeFromValue(v)
	}
	if v, ok := lookup(EnvBacktrace); ok {
		return modeFromValue(v)
	}
	return backtraceOff
}

func modeFromValue(v string) backtraceMode {
	switch v {
	case "", "0":
		return backtraceOff
	case "full":
		return backtraceFull
	default:
		return backtraceOn
	}
}

var (
	envModeOnce sync.Once
	envMode     backtraceMode
)

func envBacktraceMode() backtraceMode {
	envModeOnce.Do(func() {
		envMode = parseBacktraceMode(os.LookupEnv)
	})
	return envMode
}

// runtimeCapturer captures with runtime.Callers.
type runtimeCapturer struct {
	mode     func() backtraceMode
	maxDepth int
}

func (c *runtimeCapturer) Capture(skip int) *Backtrace {
	mode := c.mode()
	if mode == backtraceOff {
		return disabledBacktrace
	}
	// +1 to skip Capture itself.
	stk := captureStack(skip+1, c.maxDepth)
	if mode != backtraceFull {
		stk = trimRuntime(stk)
	}
	if len(stk) == 0 {
		return unsupportedBacktrace
	}
	return &Backtrace{status: BacktraceCaptured, frames: stk}
}

// RuntimeCapturer returns the default capturer. When force is true it
// captures regardless of the environment (used by callers that opt in
// programmatically, e.g. tests and panic recovery).
func RuntimeCapturer(force bool) Capturer {
	mode := envBacktraceMode
	if force {
		mode = func() backtraceMode { return backtraceOn }
	}
	return &runtimeCapturer{mode: mode, maxDepth: defaultMaxDepth}
}

type capturerHolder struct{ c Capturer }

var activeCapturer atomic.Pointer[capturerHolder]

func init() {
	activeCapturer.Store(&capturerHolder{c: RuntimeCapturer(false)})
}

// SetCapturer replaces the process-wide capturer and returns a function that
// restores the previous one. A nil c restores the environment-gated default.
func SetCapturer(c Capturer) (restore func()) {
	if c == nil {
		c = RuntimeCapturer(false)
	}
	prev := activeCapturer.Swap(&capturerHolder{c: c})
	return func() { activeCapturer.Store(prev) }
}

// capture asks the active capturer for a trace, skipping 'skip' frames above
// capture's caller.
func capture(skip int) *Backtrace {
	// +1 to skip capture itself.
	bt := activeCapturer.Load().c.Capture(skip + 1)
	if bt == nil {
		return unsupportedBacktrace
	}
	return bt
}
