// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides the architecture-specific spin-wait hint routines.
//
// Leaf contract:
// Each routine is a NOSPLIT assembly function with a zero-size frame.
// Spin assembles to exactly the hint instruction followed by RET; the
// disassembly tests decode the machine code at SpinPC to verify this on
// every supported architecture.
//
// Supported architectures and their hint:
//
//	386, amd64   PAUSE
//	arm64        ISB SY
//
// Any other GOARCH fails to compile. Porting to a new architecture means
// adding a stubs_$GOARCH.s, a hint_$GOARCH.go, and extending the build
// constraints of stubs.go and unsupported.go.
package asm
