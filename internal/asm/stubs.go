// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build 386 || amd64 || arm64

package asm

import "unsafe"

// Spin issues one spin-wait hint instruction.
// It has no inputs, no outputs, and no effect on memory or
// caller-visible registers.
func Spin()

// SpinN issues n spin-wait hint instructions back to back.
// SpinN(0) returns without issuing any.
func SpinN(n uint32)

// SpinPC returns the entry address of the Spin assembly body.
//
// The address is taken inside assembly, so it refers to the leaf
// routine itself rather than an ABI wrapper the compiler may emit
// for Go-side function values.
func SpinPC() unsafe.Pointer

// SpinNPC returns the entry address of the SpinN assembly body.
func SpinNPC() unsafe.Pointer
