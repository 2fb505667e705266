// doc.go - package documentation for xgx-anyerr
//
// # Constructing
//
//	anyerr.New(err)                 // a concrete error value
//	anyerr.From(err)                // an already-erased error, chain kept as is
//	anyerr.Msg("disk full")         // any displayable value
//	anyerr.Errorf("read %s", path)  // formatted; %w arguments stay causes
//	anyerr.FromDisplay(stringer)    // display-only value
//
// A container passed to any constructor is returned unchanged.
//
// # Adding Context
//
//	cfg, err := load(path)
//	if err != nil {
//	    return anyerr.WithContext(err, func() string {
//	        return "failed to load " + path
//	    })
//	}
//
// Context and WithContext return nil for a nil error, so they can wrap a
// call's error result unconditionally. Every layer is a NEW container; the
// wrapped one is never modified.
//
// # Inspecting
//
//	e.Error()          // "failed to load cfg.toml"
//	e.Chain()          // every layer and cause, newest first (double-ended)
//	e.RootCause()      // the innermost cause
//	anyerr.DowncastRef[*fs.PathError](e)
//
// Downcasting uses exact type identity. Interface types never match and no
// conversions are attempted. Context values are downcast targets too.
//
// # When Are Stacks Captured?
//
//	+-------------------------------+---------------------------------------+
//	| Operation                     | Captures a trace?                     |
//	+-------------------------------+---------------------------------------+
//	| New / From / Context(err, c)  | yes, unless a cause already has one   |
//	| Msg / Errorf / FromDisplay    | yes                                   |
//	| (*Error).Context              | never (the chain already owns one)    |
//	| WithStack                     | yes, ignoring the environment gate    |
//	+-------------------------------+---------------------------------------+
//
// Capture is off unless ANYERR_LIB_BACKTRACE or ANYERR_BACKTRACE is set to a
// value other than "0". Traces from github.com/pkg/errors count as already
// captured and are reported by Backtrace().
//
// # Formatting
//
//   - %v, %s  → outermost message
//   - %+s     → "outer: middle: inner"
//   - %+v     → message, "Caused by:" list and captured stack backtrace
//   - %#v     → the stored value's own Go-syntax form
//
// # Interop
//
//   - errors.Is/As see every layer: *Error unwraps to its top layer, each
//     context layer unwraps to the container it wraps.
//   - *Error implements slog.LogValuer.
//   - Package grpcstatus converts containers to gRPC statuses.
package anyerr
