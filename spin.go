// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cpuhint

import "code.hybscloud.com/cpuhint/internal/asm"

// Instruction is the mnemonic of the spin-wait hint compiled in for the
// target architecture: "PAUSE" on 386 and amd64, "ISB" on arm64.
const Instruction = asm.Instruction

// Spin issues one CPU spin-wait hint.
//
// Call it once per iteration of a busy-wait loop. It never blocks, never
// yields to the scheduler, and has no effect on memory; it returns after
// a small, bounded number of cycles. Safe for concurrent use.
//
// Spin is inlined at the call site, leaving a single call to a two
// instruction leaf routine (the hint and RET).
func Spin() {
	asm.Spin()
}

// SpinN issues n spin-wait hints back to back in one call.
// SpinN(0) is a no-op.
func SpinN(n uint32) {
	asm.SpinN(n)
}
