// log.go - structured logging support.
//
// *Error implements slog.LogValuer so that
//
//	slog.Error("request failed", "error", err)
//
// emits a group instead of a flat string:
//
//	error.msg        outermost message
//	error.causes     remaining chain messages, outermost first (if any)
//	error.backtrace  rendered trace (only when captured)
package anyerr

import "log/slog"

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	c := e.Chain()
	top, _ := c.Next()
	attrs := []slog.Attr{slog.String("msg", top.Error())}

	if c.Len() > 0 {
		causes := make([]string, 0, c.Len())
		for cause := range c.All() {
			causes = append(causes, cause.Error())
		}
		attrs = append(attrs, slog.Any("causes", causes))
	}

	if bt := e.Backtrace(); bt.Status() == BacktraceCaptured {
		attrs = append(attrs, slog.String("backtrace", bt.String()))
	}
	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = (*Error)(nil)
