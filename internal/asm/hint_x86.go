// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64

package asm

// Instruction is the mnemonic of the hint issued by Spin.
//
// PAUSE improves spin-loop performance on SMT cores and lowers power
// draw; cores that predate it decode the encoding (F3 90) as NOP.
const Instruction = "PAUSE"
