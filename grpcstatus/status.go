// Package grpcstatus converts anyerr containers to and from gRPC statuses.
//
// The status code is taken from the first element of the cause chain that
// carries a gRPC status (GRPCStatus() *status.Status); chains without one map
// to codes.Unknown. The status message is the whole chain joined by ": ", so
// clients see every context layer.
package grpcstatus

import (
	"context"
	"errors"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	anyerr "github.com/xgx-io/xgx-anyerr"
)

type grpcStatuser interface {
	GRPCStatus() *status.Status
}

// CodeOf returns the code of the first status found in err's chain, or
// codes.Unknown. A nil err is codes.OK.
func CodeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	for cause := range anyerr.NewChain(err).All() {
		if gs, ok := cause.(grpcStatuser); ok {
			if st := gs.GRPCStatus(); st != nil {
				return st.Code()
			}
		}
	}
	return codes.Unknown
}

// ToStatus converts err into a status whose message is the full chain.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	return status.New(CodeOf(err), anyerr.ChainMessage(err))
}

// FromStatus adapts a non-OK status into a container. The status error stays
// reachable through errors.As and status.FromError. An OK status yields nil.
func FromStatus(st *status.Status) *anyerr.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}
	return anyerr.From(st.Err())
}

// Errorf builds a container whose root cause is a status with code c.
func Errorf(c codes.Code, format string, args ...any) *anyerr.Error {
	return anyerr.From(status.Errorf(c, format, args...))
}

// UnaryServerInterceptor converts containers returned by handlers into
// statuses. Other errors are passed through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		var ae *anyerr.Error
		if err == nil || !errors.As(err, &ae) {
			return resp, err
		}
		return resp, ToStatus(err).Err()
	}
}

// RecoveryHandler turns a recovered panic into a codes.Internal status. The
// panic value is wrapped in a container with a forced trace and logged.
func RecoveryHandler(ctx context.Context, p any) error {
	err := anyerr.WithStack(anyerr.Msg(p)).Context("panic recovered")

	slog.ErrorContext(ctx, "grpc handler panicked", "error", err)
	return status.Error(codes.Internal, anyerr.ChainMessage(err))
}

// RecoveryOption plugs RecoveryHandler into the go-grpc-middleware recovery
// interceptors.
func RecoveryOption() recovery.Option {
	return recovery.WithRecoveryHandlerContext(RecoveryHandler)
}
