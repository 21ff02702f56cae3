// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !delegate_nochecks

package delegate

// checks enables the validity check in Call.
// Build with -tags delegate_nochecks to compile it out.
const checks = true
