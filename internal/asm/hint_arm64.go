// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package asm

// Instruction is the mnemonic of the hint issued by Spin.
//
// ISB SY, not YIELD: YIELD retires as a NOP on most implementations,
// while ISB stalls the pipeline for a short, bounded time and gives
// measurably better spin-loop backoff.
// See https://github.com/rust-lang/rust/commit/c064b6560b7ce0adeb9bbf5d7dcf12b1acb0c807
const Instruction = "ISB"
