// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !386 && !amd64 && !arm64

package asm

// There is no spin-wait hint for this GOARCH. The build fails here with
// "undefined: unknownCPUArchitecture" instead of silently spinning without
// a hint, which would only ever show up as a performance regression.
var _ = unknownCPUArchitecture
