// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cpuhint issues the CPU spin-wait hint instruction.
//
// A spin-wait hint tells the core that the current thread is busy-waiting.
// The core can then lower power draw, avoid the memory-order pipeline flush
// when the awaited store finally lands, and give execution resources to the
// sibling hyper-thread. The hint never changes program-visible state.
//
// The instruction is chosen at build time from GOARCH:
//
//	386, amd64   PAUSE
//	arm64        ISB SY
//
// Any other architecture fails to build with
// "undefined: unknownCPUArchitecture". There is no silent no-op fallback:
// a missing hint would only ever surface as a performance regression.
//
// # Usage
//
// Call [Spin] once per iteration of a spin-loop:
//
//	for !ready.LoadAcquire() {
//	    cpuhint.Spin()
//	}
//
// cpuhint is not a backoff policy. Bound the spin in the caller and then
// escalate, for example to [code.hybscloud.com/iox.Backoff]:
//
//	backoff := iox.Backoff{}
//	for i := 0; !ready.LoadAcquire(); i++ {
//	    if i < 64 {
//	        cpuhint.Spin()
//	        continue
//	    }
//	    backoff.Wait()
//	}
//
// [SpinN] issues several hints in one call when a caller wants a longer
// pause per iteration without paying a call per hint.
//
// # Cost
//
// Go does not inline assembly, so Spin compiles to one direct call to a
// leaf routine whose entire body is the hint followed by RET. There is no
// allocation, no stack check and no branch. The disassembly tests in
// internal/asm pin the exact instruction sequence and the benchmarks track
// the per-call cost.
package cpuhint
