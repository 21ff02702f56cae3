// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Policy selects how a call to an unbound delegate is reported.
type Policy uint32

const (
	// PolicyPanic panics with an [*Error]. The fault can be recovered.
	PolicyPanic Policy = iota
	// PolicyLog logs the fault at error level; Call returns the zero result.
	PolicyLog
	// PolicyAbort logs the fault at fatal level, which exits the process.
	PolicyAbort
	// PolicyIgnore skips reporting; Call returns the zero result.
	PolicyIgnore
)

var policyNames = [...]string{
	PolicyPanic:  "panic",
	PolicyLog:    "log",
	PolicyAbort:  "abort",
	PolicyIgnore: "ignore",
}

var (
	policy       atomic.Uint32
	errorHandler atomic.Pointer[Action[*Error]]
)

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "Policy(" + strconv.FormatUint(uint64(p), 10) + ")"
}

// ParsePolicy returns the policy named s ("panic", "log", "abort", "ignore").
// Matching is case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}
	return 0, fmt.Errorf("delegate: unknown policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if int(p) >= len(policyNames) {
		return nil, fmt.Errorf("delegate: invalid policy %d", uint32(p))
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// SetPolicy installs p and returns the previous policy.
// Panics if p is not one of the defined policies.
func SetPolicy(p Policy) Policy {
	if int(p) >= len(policyNames) {
		panic("delegate: invalid policy")
	}
	return Policy(policy.Swap(uint32(p)))
}

// CurrentPolicy returns the installed policy.
func CurrentPolicy() Policy {
	return Policy(policy.Load())
}

// SetErrorHandler installs h to observe every reported fault before the
// policy acts on it. The handler is called through [Delegate.TryCall], so an
// unbound h is equivalent to [ClearErrorHandler]. Faults raised while h runs,
// including by h itself, go straight to the policy.
func SetErrorHandler(h Action[*Error]) {
	errorHandler.Store(&h)
}

// ClearErrorHandler removes the installed error handler.
func ClearErrorHandler() {
	errorHandler.Store(nil)
}
