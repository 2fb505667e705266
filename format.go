// format.go - fmt.Formatter for containers.
//
// Behavior:
//
//	%s, %v   → the outermost message.
//	%q       → the outermost message, quoted.
//	%+s      → the whole chain joined with ": " (outermost first).
//	%+v      → report:
//	             <message>
//
//	             Caused by:
//	                 0: <cause>
//	                 1: <cause>
//
//	             Stack backtrace:
//	                0: pkg.Func
//	                          at file.go:12
//	%#v      → the stored value's own Go-syntax form, no chain or trace.
//
// A single cause is indented by four spaces instead of numbered. The
// backtrace section is printed only when a trace was captured.
package anyerr

import (
	"fmt"
	"io"
	"strings"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatChain writes every element of the chain joined by ": ".
func formatChain(w io.Writer, c *Chain) {
	first := true
	for cause := range c.All() {
		if !first {
			_, _ = io.WriteString(w, ": ")
		}
		first = false
		_, _ = io.WriteString(w, cause.Error())
	}
}

// formatReport writes the message, its causes and the captured trace.
func formatReport(w io.Writer, e *Error) {
	c := e.Chain()
	top, _ := c.Next()
	formatConcise(w, top)

	causes := c.Collect()
	if len(causes) > 0 {
		_, _ = io.WriteString(w, "\n\nCaused by:")
		numbered := len(causes) > 1
		for n, cause := range causes {
			_, _ = io.WriteString(w, "\n")
			writeIndented(w, cause.Error(), n, numbered)
		}
	}

	if bt := e.Backtrace(); bt.Status() == BacktraceCaptured {
		_, _ = io.WriteString(w, "\n\nStack backtrace:\n")
		bt.writeTo(w)
	}
}

// writeIndented writes one cause. Numbered causes start with "    N: " and
// continue under the message; unnumbered ones are indented four spaces.
func writeIndented(w io.Writer, msg string, n int, numbered bool) {
	cont := "    "
	if numbered {
		_, _ = fmt.Fprintf(w, "%5d: ", n)
		cont = "       "
	} else {
		_, _ = io.WriteString(w, "    ")
	}
	for i, line := range strings.Split(msg, "\n") {
		if i > 0 {
			_, _ = io.WriteString(w, "\n"+cont)
		}
		_, _ = io.WriteString(w, line)
	}
}

// ChainMessage renders err and all its causes joined by ": ", the same text
// as %+s on a container. A nil err renders as "".
func ChainMessage(err error) string {
	if err == nil {
		return ""
	}
	var sb strings.Builder
	formatChain(&sb, NewChain(err))
	return sb.String()
}

func (e *Error) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			formatReport(s, e)
		case s.Flag('#'):
			_, _ = io.WriteString(s, e.obj.goString())
		default:
			formatConcise(s, e)
		}
	case 's':
		if s.Flag('+') {
			formatChain(s, e.Chain())
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

var _ fmt.Formatter = (*Error)(nil)
