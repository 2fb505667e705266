// chain.go - double-ended iteration over a cause chain.
//
// A Chain starts in linked mode: Next follows Unwrap (or the legacy Cause)
// one step at a time without allocating. The first call that needs the back
// end (NextBack, Rev) buffers the remaining elements once; from then on both
// ends are served from the buffer.
//
// Chains are finite as long as the externally supplied causes are acyclic; a
// cyclic cause chain is a caller error and is not detected.
package anyerr

import "iter"

// Chain iterates over an error and its causes, outermost first.
type Chain struct {
	next     error   // linked mode: next element to yield
	buf      []error // buffered mode: remaining elements
	buffered bool
	reversed bool
}

// NewChain starts a walk at err. A container is walked from its current
// error, so NewChain(e) and e.Chain() yield the same sequence.
func NewChain(err error) *Chain {
	return &Chain{next: flatten(err)}
}

// Chain returns a fresh walk over the container's causes, starting with the
// outermost (most recently attached) layer.
func (e *Error) Chain() *Chain {
	if e == nil {
		return &Chain{}
	}
	return &Chain{next: e.obj.errorValue()}
}

// Next yields the next element in iteration order.
func (c *Chain) Next() (error, bool) {
	if c.reversed {
		return c.popBack()
	}
	return c.popFront()
}

// NextBack yields the element at the opposite end of iteration order.
func (c *Chain) NextBack() (error, bool) {
	if c.reversed {
		return c.popFront()
	}
	return c.popBack()
}

// Len reports the exact number of elements not yet yielded.
func (c *Chain) Len() int {
	if c.buffered {
		return len(c.buf)
	}
	n := 0
	for cur := c.next; cur != nil; cur = sourceOf(cur) {
		n++
	}
	return n
}

// Rev returns a chain over the remaining elements in the opposite order.
// The receiver must not be used afterwards.
func (c *Chain) Rev() *Chain {
	c.buffer()
	return &Chain{buf: c.buf, buffered: true, reversed: !c.reversed}
}

// All returns an iterator that drains the chain in iteration order.
func (c *Chain) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		for {
			err, ok := c.Next()
			if !ok || !yield(err) {
				return
			}
		}
	}
}

// Collect drains the chain into a slice.
func (c *Chain) Collect() []error {
	out := make([]error, 0, c.Len())
	for err := range c.All() {
		out = append(out, err)
	}
	return out
}

func (c *Chain) popFront() (error, bool) {
	if c.buffered {
		if len(c.buf) == 0 {
			return nil, false
		}
		err := c.buf[0]
		c.buf = c.buf[1:]
		return err, true
	}
	if c.next == nil {
		return nil, false
	}
	err := c.next
	c.next = sourceOf(err)
	return err, true
}

func (c *Chain) popBack() (error, bool) {
	c.buffer()
	if len(c.buf) == 0 {
		return nil, false
	}
	err := c.buf[len(c.buf)-1]
	c.buf = c.buf[:len(c.buf)-1]
	return err, true
}

// buffer switches to buffered mode, collecting the rest of the linked walk.
func (c *Chain) buffer() {
	if c.buffered {
		return
	}
	var buf []error
	for cur := c.next; cur != nil; cur = sourceOf(cur) {
		buf = append(buf, cur)
	}
	c.buf = buf
	c.next = nil
	c.buffered = true
}
