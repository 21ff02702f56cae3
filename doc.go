// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delegate provides zero-allocation, comparable single-target
// callable references in Go.
//
// A [Delegate] binds to one callable and invokes it through a uniform Call
// method, whatever the kind of binding. Its run-time state is an invocation
// record of two parts: a non-owning receiver pointer and a trampoline. The
// trampoline is a zero-size generic type stored in an interface, so binding
// copies two words, calling is one interface dispatch, and == compares the
// receiver identity and the trampoline identity.
//
// # Design Philosophy
//
// delegate provides:
//   - Value semantics: delegates are copied by assignment and compared with ==
//   - Zero allocation: binding and calling never touch the heap
//   - Compile-time targets: a stateless selector type stands in for a
//     function, member, or receiver, and the compiler instantiates one
//     trampoline per selector
//   - Static safety: receiver-storing bindings take pointers, so temporaries
//     cannot be bound
//
// # Callable Shapes
//
// Signatures are inferred from the methods of selector types, the same way
// method-constrained type parameters infer result types elsewhere:
//
//   - [Invoker]: Invoke(A) R, for free-function selectors and function objects
//   - [MethodOf]: Apply(*T, A) R, a pointer-receiver method selector
//   - [ConstMethodOf]: Apply(T, A) R, a value-receiver method selector
//   - [InstanceOf]: Instance() P, a compile-time receiver selector
//
// [Delegate] itself has no Invoke method, so a delegate is never bound
// through a function-object constructor.
//
// # Binding
//
// Each constructor returns a bound delegate. Rebinding is assignment.
//
//   - [Function]: free function fixed at compile time (no receiver stored)
//   - [Lambda]: closure variable bound by reference
//   - [Functor]: function object with a pointer-receiver Invoke
//   - [ConstFunctor]: function object with a value-receiver Invoke
//   - [Method]: method selector on a run-time receiver
//   - [ConstMethod]: value-receiver method selector on a run-time receiver
//   - [Fixed]: method selector on a compile-time receiver (no receiver stored)
//   - [FixedConst]: value-receiver method on a compile-time receiver
//   - [FixedFunctor]: function object fixed at compile time
//
// Two-argument counterparts carry a 2 suffix ([Delegate2], [Function2], ...).
// A delegate that produces nothing uses [Unit] as its result type; see
// [Action] and [Action2].
//
// # Invocation
//
//   - [Delegate.Call]: invoke; an unbound call is reported through the [Policy]
//   - [Delegate.TryCall]: invoke if bound, report whether it ran
//   - [Delegate.CallIf]: invoke if bound, result as an [Optional]
//   - [Delegate.CallOr]: invoke, or a run-time alternative when unbound
//   - [CallOrFunction]: invoke, or a compile-time alternative when unbound
//   - [Delegate.IsValid], [Delegate.Equal], [Delegate.Clear]
//
// Only Call reports misuse. The other call forms are defined for every state.
//
// # Failure Policy
//
// Calling an unbound delegate is a programmer error. The embedding
// application chooses the reaction:
//
//   - [PolicyPanic]: panic with [*Error] (default)
//   - [PolicyLog]: log through [Logger] and return the zero result
//   - [PolicyAbort]: log at fatal level and exit
//   - [PolicyIgnore]: return the zero result silently
//
// [SetErrorHandler] installs an [Action] that observes every fault first.
// Building with -tags delegate_nochecks removes the check from Call.
//
// # Example
//
//	type add struct{}
//	func (add) Invoke(a, b int) int { return a + b }
//
//	type mul struct{}
//	func (mul) Invoke(a, b int) int { return a * b }
//
//	d := delegate.Function2[add]()
//	d.Call(3, 4) // 7
//
//	d.Clear()
//	d.CallIf(3, 4).IsPresent()             // false
//	delegate.CallOrFunction2[mul](d, 3, 4) // 12
//
// # Concurrency
//
// A delegate adds no synchronization. Concurrent calls are as safe as the
// bound target; concurrent rebinding of one delegate value is a data race.
// The policy, logger and error handler are stored atomically.
package delegate
