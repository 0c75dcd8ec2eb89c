// Copyright 2025 go-amx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !noasm && darwin && arm64

package asm

// Set enables the coprocessor for the calling thread.
func Set()

// Clr disables the coprocessor for the calling thread.
func Clr()

// Ldx loads 64 bytes (128 when paired) into an X register.
func Ldx(operand uint64)

// Ldy loads 64 bytes (128 when paired) into a Y register.
func Ldy(operand uint64)

// Stx stores an X register (or pair) to memory.
func Stx(operand uint64)

// Sty stores a Y register (or pair) to memory.
func Sty(operand uint64)

// Ldz loads 64 bytes (128 when paired) into a Z row.
func Ldz(operand uint64)

// Stz stores a Z row (or pair) to memory.
func Stz(operand uint64)

// Ldzi loads Z in interleaved layout.
func Ldzi(operand uint64)

// Stzi stores Z in interleaved layout.
func Stzi(operand uint64)

// Extrx moves data from Z into X.
func Extrx(operand uint64)

// Extry moves data from Z into Y.
func Extry(operand uint64)

// Fma64 is the f64 fused multiply-add.
func Fma64(operand uint64)

// Fms64 is the f64 fused multiply-subtract.
func Fms64(operand uint64)

// Fma32 is the f32 fused multiply-add.
func Fma32(operand uint64)

// Fms32 is the f32 fused multiply-subtract.
func Fms32(operand uint64)

// Mac16 is the i16 multiply-accumulate.
func Mac16(operand uint64)

// Fma16 is the f16 fused multiply-add.
func Fma16(operand uint64)

// Fms16 is the f16 fused multiply-subtract.
func Fms16(operand uint64)

// Vecint is the vector integer operation.
func Vecint(operand uint64)

// Vecfp is the vector floating-point operation.
func Vecfp(operand uint64)

// Matint is the matrix integer operation.
func Matint(operand uint64)

// Matfp is the matrix floating-point operation.
func Matfp(operand uint64)

// Genlut generates or applies a lookup table.
func Genlut(operand uint64)
