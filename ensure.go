// ensure.go - condition checks that produce containers.
//
// Ensure/Ensuref return nil when the condition holds, otherwise a message
// container. EnsureCmp additionally renders both operands:
//
//	Condition failed: `got == want` (3 vs 4)
//
// Operands are rendered into a small fixed buffer that accepts only short,
// whitespace-free tokens. An operand that does not fit degrades to the short
// form without values:
//
//	Condition failed: `got == want`
package anyerr

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
)

// Op is a comparison operator understood by EnsureCmp.
type Op string

const (
	OpEq Op = "=="
	OpNe Op = "!="
	OpLt Op = "<"
	OpLe Op = "<="
	OpGt Op = ">"
	OpGe Op = ">="
)

// holds evaluates lhs op rhs with the language operators, so NaN compares
// false against everything. Unknown operators never hold.
func holds[T cmp.Ordered](lhs T, op Op, rhs T) bool {
	switch op {
	case OpEq:
		return lhs == rhs
	case OpNe:
		return lhs != rhs
	case OpLt:
		return lhs < rhs
	case OpLe:
		return lhs <= rhs
	case OpGt:
		return lhs > rhs
	case OpGe:
		return lhs >= rhs
	default:
		return false
	}
}

// Ensure returns nil if cond holds, otherwise a container built from msg
// (see Msg).
func Ensure(cond bool, msg any) error {
	if cond {
		return nil
	}
	if err, ok := msg.(error); ok {
		return fromError(err, 1)
	}
	return newRecord(&messageError{msg: newOwn(msg)}, nil, 1)
}

// Ensuref is Ensure with a formatted message, formatted only on failure.
func Ensuref(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return newRecord(&messageError{msg: newOwn(fmt.Sprintf(format, args...))}, nil, 1)
}

// EnsureCmp checks lhs op rhs. expr is the source text of the condition
// shown in the message (e.g. "len(items) > 0").
func EnsureCmp[T cmp.Ordered](lhs T, op Op, rhs T, expr string) error {
	if holds(lhs, op, rhs) {
		return nil
	}
	if expr == "" {
		expr = fmt.Sprintf("lhs %s rhs", op)
	}
	return newRecord(&messageError{msg: newOwn(renderCondition(expr, lhs, rhs))}, nil, 1)
}

// renderCondition builds the failure message, falling back to the short form
// when an operand does not fit the buffer.
func renderCondition(expr string, lhs, rhs any) string {
	var buf operandBuf
	if _, err := fmt.Fprintf(&buf, "%v", lhs); err != nil {
		return "Condition failed: `" + expr + "`"
	}
	split := buf.n
	if _, err := fmt.Fprintf(&buf, "%v", rhs); err != nil {
		return "Condition failed: `" + expr + "`"
	}
	l, r := buf.b[:split], buf.b[split:buf.n]
	return fmt.Sprintf("Condition failed: `%s` (%s vs %s)", expr, l, r)
}

// operandBufSize is the combined capacity for both rendered operands.
const operandBufSize = 40

var (
	errOperandSpace = errors.New("operand contains whitespace")
	errOperandFull  = errors.New("operand buffer full")
)

// operandBuf is a fixed-capacity writer that rejects whitespace.
type operandBuf struct {
	b [operandBufSize]byte
	n int
}

func (w *operandBuf) Write(p []byte) (int, error) {
	if bytes.ContainsAny(p, " \n") {
		return 0, errOperandSpace
	}
	if len(p) > len(w.b)-w.n {
		return 0, errOperandFull
	}
	w.n += copy(w.b[w.n:], p)
	return len(p), nil
}
