// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"errors"
	"path/filepath"
	"runtime"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrUninitialized is the reason reported when an unbound delegate is called.
var ErrUninitialized = errors.New("delegate: uninitialised")

// Error is a misuse fault with the source location of the offending call.
type Error struct {
	Reason error
	File   string
	Line   int
}

func (e *Error) Error() string {
	return e.Reason.Error() + " at " + filepath.Base(e.File) + ":" + strconv.Itoa(e.Line)
}

// Unwrap returns the reason, so errors.Is(err, ErrUninitialized) holds.
func (e *Error) Unwrap() error {
	return e.Reason
}

// callerDepth is the number of frames between report and the user's Call:
// report, uninitialized, Call.
const callerDepth = 3

// uninitialized reports an unbound Call and yields the zero result for
// policies that return control. Kept out of line so Call stays inlineable.
//
//go:noinline
func uninitialized[R any]() R {
	report(ErrUninitialized)
	var zero R
	return zero
}

// handling is set while the error handler runs. A fault raised meanwhile
// skips the handler so a handler that calls an unbound delegate cannot recurse.
var handling atomic.Bool

// report hands a fault to the installed error handler, then applies the
// failure policy.
func report(reason error) {
	p := CurrentPolicy()
	if p == PolicyIgnore {
		return
	}
	err := &Error{Reason: reason}
	if _, file, line, ok := runtime.Caller(callerDepth); ok {
		err.File, err.Line = file, line
	}
	if h := errorHandler.Load(); h != nil && handling.CompareAndSwap(false, true) {
		func() {
			defer handling.Store(false)
			h.TryCall(err)
		}()
	}
	switch p {
	case PolicyLog:
		Logger().Error("delegate invoked while uninitialised",
			zap.String("file", err.File),
			zap.Int("line", err.Line),
			zap.Error(err))
	case PolicyAbort:
		Logger().Fatal("delegate invoked while uninitialised",
			zap.String("file", err.File),
			zap.Int("line", err.Line),
			zap.Error(err))
	default:
		panic(err)
	}
}
