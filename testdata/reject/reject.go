// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reject holds bindings the compiler must refuse.
// Lines marked "want error" must fail to type-check; all others must pass.
package reject

import "code.hybscloud.com/delegate"

type counter struct{ n int }

func (c *counter) Invoke(d int) int { c.n += d; return c.n }

func (c counter) Peek(d int) int { return c.n + d }

type peek struct{}

func (peek) Invoke(d int) int { return d }

type addSel struct{}

func (addSel) Apply(c *counter, d int) int { return c.Invoke(d) }

type peekSel struct{}

func (peekSel) Apply(c counter, d int) int { return c.Peek(d) }

func newCounter() counter { return counter{} }

func newPeek() peek { return peek{} }

func newLambda() func(int) int { return func(x int) int { return x } }

func valid() {
	var c counter
	p := peek{}
	fn := newLambda()
	_ = delegate.Functor[int, int](&c)
	_ = delegate.ConstFunctor(&p)
	_ = delegate.Method[addSel](&c)
	_ = delegate.ConstMethod[peekSel](&c)
	_ = delegate.Lambda(&fn)
}

func temporaryLambda() {
	_ = delegate.Lambda(&func(x int) int { return x }) // want error
}

func temporaryLambdaResult() {
	_ = delegate.Lambda(&newLambda()) // want error
}

func temporaryFunctor() {
	_ = delegate.Functor[int, int](&newCounter()) // want error
}

func temporaryConstFunctor() {
	_ = delegate.ConstFunctor(&newPeek()) // want error
}

func functorByValue() {
	_ = delegate.ConstFunctor(newPeek()) // want error
}

func temporaryMethodReceiver() {
	_ = delegate.Method[addSel](&newCounter()) // want error
}

func methodReceiverByValue() {
	_ = delegate.Method[addSel](newCounter()) // want error
}

func temporaryConstMethodReceiver() {
	_ = delegate.ConstMethod[peekSel](&newCounter()) // want error
}

func delegateAsFunctor() {
	var d delegate.Delegate[int, int]
	_ = delegate.ConstFunctor(&d) // want error
}
