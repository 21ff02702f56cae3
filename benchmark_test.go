// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import (
	"testing"

	"code.hybscloud.com/delegate"
)

var sink int

// BenchmarkDirectCall is the baseline: a static call through the selector.
func BenchmarkDirectCall(b *testing.B) {
	var f double
	for b.Loop() {
		sink = f.Invoke(sink)
	}
}

// BenchmarkFuncValue calls through a plain Go func value.
func BenchmarkFuncValue(b *testing.B) {
	f := func(x int) int { return 2 * x }
	for b.Loop() {
		sink = f(sink)
	}
}

func BenchmarkFunction(b *testing.B) {
	d := delegate.Function[double]()
	for b.Loop() {
		sink = d.Call(sink)
	}
}

func BenchmarkLambda(b *testing.B) {
	fn := func(x int) int { return 2 * x }
	d := delegate.Lambda(&fn)
	for b.Loop() {
		sink = d.Call(sink)
	}
}

func BenchmarkMethod(b *testing.B) {
	var c Counter
	d := delegate.Method[addSel](&c)
	for b.Loop() {
		sink = d.Call(1)
	}
}

func BenchmarkFixed(b *testing.B) {
	d := delegate.Fixed[theCounter, addSel]()
	for b.Loop() {
		sink = d.Call(1)
	}
}

func BenchmarkFunction2(b *testing.B) {
	d := delegate.Function2[add]()
	for b.Loop() {
		sink = d.Call(sink, 1)
	}
}

// BenchmarkBindMethod measures rebinding, a two-word store.
func BenchmarkBindMethod(b *testing.B) {
	var c Counter
	var d delegate.Delegate[int, int]
	for b.Loop() {
		d = delegate.Method[addSel](&c)
	}
	_ = d
}

func BenchmarkEqual(b *testing.B) {
	var c Counter
	d1 := delegate.Method[addSel](&c)
	d2 := delegate.Method[addSel](&c)
	eq := false
	for b.Loop() {
		eq = d1 == d2
	}
	_ = eq
}
