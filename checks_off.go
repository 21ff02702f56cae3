// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build delegate_nochecks

package delegate

// checks is disabled: calling an unbound delegate dereferences a nil
// trampoline and faults in the runtime.
const checks = false
