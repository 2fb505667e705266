// stack.go - stack capture and the Backtrace value carried by containers.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (inlined calls are expanded by CallersFrames).
//   - Bounded depth; capture happens at most once per chain.
//   - A Backtrace always answers Status(), even when nothing was captured, so
//     callers can tell "disabled" from "unsupported" from "captured".
package anyerr

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds the number of program counters recorded.
	defaultMaxDepth = 64
)

// captureStack records up to maxDepth frames, skipping 'skip' frames above
// the caller of captureStack (skip=0 starts at that caller).
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	// +2: runtime.Callers itself and captureStack.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	return resolveFrames(pc[:n])
}

// resolveFrames turns return program counters into resolved frames.
func resolveFrames(pcs []uintptr) Stack {
	if len(pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs)
	out := make(Stack, 0, len(pcs))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// trimRuntime drops runtime-internal frames (goroutine entry, runtime.main)
// that carry no information about the failing program.
func trimRuntime(s Stack) Stack {
	out := s[:0:0]
	for _, fr := range s {
		if strings.HasPrefix(fr.Function, "runtime.") {
			continue
		}
		out = append(out, fr)
	}
	return out
}

// BacktraceStatus describes whether a Backtrace holds frames.
type BacktraceStatus int

const (
	// BacktraceUnsupported means capture was attempted but produced no frames.
	BacktraceUnsupported BacktraceStatus = iota
	// BacktraceDisabled means capture is switched off (see ANYERR_BACKTRACE).
	BacktraceDisabled
	// BacktraceCaptured means the Backtrace holds resolved frames.
	BacktraceCaptured
)

func (s BacktraceStatus) String() string {
	switch s {
	case BacktraceUnsupported:
		return "unsupported"
	case BacktraceDisabled:
		return "disabled"
	case BacktraceCaptured:
		return "captured"
	default:
		return "BacktraceStatus(" + strconv.Itoa(int(s)) + ")"
	}
}

// Backtrace is an immutable stack snapshot attached to an error chain.
type Backtrace struct {
	status BacktraceStatus
	frames Stack
}

var (
	disabledBacktrace    = &Backtrace{status: BacktraceDisabled}
	unsupportedBacktrace = &Backtrace{status: BacktraceUnsupported}
)

// DisabledBacktrace returns the shared trace reported when capture is off.
func DisabledBacktrace() *Backtrace { return disabledBacktrace }

// NewBacktrace resolves return program counters (as produced by
// runtime.Callers) into a Backtrace. An empty slice yields an unsupported
// trace.
func NewBacktrace(pcs []uintptr) *Backtrace {
	frames := resolveFrames(pcs)
	if len(frames) == 0 {
		return unsupportedBacktrace
	}
	return &Backtrace{status: BacktraceCaptured, frames: frames}
}

// backtraceFromPkg converts a github.com/pkg/errors stack. pkgerrors.Frame
// stores the raw return PC recorded by runtime.Callers.
func backtraceFromPkg(st pkgerrors.StackTrace) *Backtrace {
	pcs := make([]uintptr, len(st))
	for i, f := range st {
		pcs[i] = uintptr(f)
	}
	return NewBacktrace(pcs)
}

// Status reports whether frames were captured. A nil Backtrace is disabled.
func (b *Backtrace) Status() BacktraceStatus {
	if b == nil {
		return BacktraceDisabled
	}
	return b.status
}

// Frames returns a copy of the captured frames, most recent call first.
func (b *Backtrace) Frames() Stack {
	if b == nil || len(b.frames) == 0 {
		return nil
	}
	out := make(Stack, len(b.frames))
	copy(out, b.frames)
	return out
}

// String renders the trace one numbered frame per entry:
//
//	   0: pkg.Func
//	             at /path/file.go:12
func (b *Backtrace) String() string {
	var sb strings.Builder
	b.writeTo(&sb)
	return sb.String()
}

// Format implements fmt.Formatter; every verb renders String().
func (b *Backtrace) Format(s fmt.State, _ rune) {
	b.writeTo(s)
}

func (b *Backtrace) writeTo(w io.Writer) {
	switch b.Status() {
	case BacktraceDisabled:
		_, _ = io.WriteString(w, "disabled backtrace")
		return
	case BacktraceUnsupported:
		_, _ = io.WriteString(w, "unsupported backtrace")
		return
	}
	for i, fr := range b.frames {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "%4d: %s\n             at %s:%d", i, fr.Function, fr.File, fr.Line)
	}
}
