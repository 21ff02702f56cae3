// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import "code.hybscloud.com/delegate"

// Shared callables for the delegate tests.

// Counter is a receiver with mutating and read-only methods.
type Counter struct{ n int }

func (c *Counter) Add(d int) int { c.n += d; return c.n }

func (c Counter) Peek(d int) int { return c.n + d }

func (c *Counter) AddProduct(a, b int) int { c.n += a * b; return c.n }

func (c Counter) Affine(a, b int) int { return c.n*a + b }

// Method selectors.

type addSel struct{}

func (addSel) Apply(c *Counter, d int) int { return c.Add(d) }

type peekSel struct{}

func (peekSel) Apply(c Counter, d int) int { return c.Peek(d) }

type addProductSel struct{}

func (addProductSel) Apply(c *Counter, a, b int) int { return c.AddProduct(a, b) }

type affineSel struct{}

func (affineSel) Apply(c Counter, a, b int) int { return c.Affine(a, b) }

// Free-function selectors.

type double struct{}

func (double) Invoke(x int) int { return 2 * x }

type negate struct{}

func (negate) Invoke(x int) int { return -x }

type add struct{}

func (add) Invoke(a, b int) int { return a + b }

type mul struct{}

func (mul) Invoke(a, b int) int { return a * b }

func negateFn(x int) int { return -x }

func subFn(a, b int) int { return a - b }

// Accumulator is a function object that mutates itself.
type Accumulator struct{ sum, calls int }

func (a *Accumulator) Invoke(x int) int { a.calls++; a.sum += x; return a.sum }

// Offset is a function object with a value receiver.
type Offset struct{ by int }

func (o Offset) Invoke(x int) int { return x + o.by }

// Tally is a two-argument function object that mutates itself.
type Tally struct{ calls int }

func (t *Tally) Invoke(a, b int) int { t.calls++; return a + b }

// Weighted is a two-argument function object with a value receiver.
type Weighted struct{ w int }

func (w Weighted) Invoke(a, b int) int { return a*w.w + b }

// Compile-time receivers.

var (
	globalCounter Counter
	globalAcc     Accumulator
	globalTally   Tally
)

type theCounter struct{}

func (theCounter) Instance() *Counter { return &globalCounter }

type theAccumulator struct{}

func (theAccumulator) Instance() *Accumulator { return &globalAcc }

type theTally struct{}

func (theTally) Instance() *Tally { return &globalTally }

// faultRecorder is an error handler that records every fault.
type faultRecorder struct{ faults []*delegate.Error }

func (r *faultRecorder) Invoke(e *delegate.Error) delegate.Unit {
	r.faults = append(r.faults, e)
	return delegate.Unit{}
}

// catchPanic runs f and returns the recovered value, or nil.
func catchPanic(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}
